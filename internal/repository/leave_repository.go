package repository

import (
	"hr-portal-backend/internal/domain"
	"hr-portal-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LeaveRepository interface {
	Create(leave *model.LeaveRequest) error
	GetByID(id uint) (*model.LeaveRequest, error)
	GetByEmployeeID(employeeID uint) ([]model.LeaveRequest, error)
	GetAll() ([]model.LeaveRequest, error)
	Approve(leave *model.LeaveRequest) error
	Reject(leave *model.LeaveRequest) error
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db}
}

func (r *leaveRepository) Create(leave *model.LeaveRequest) error {
	return r.db.Omit(clause.Associations).Create(leave).Error
}

func (r *leaveRepository) GetByID(id uint) (*model.LeaveRequest, error) {
	var leave model.LeaveRequest
	err := r.db.Preload("Employee").First(&leave, id).Error
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) GetByEmployeeID(employeeID uint) ([]model.LeaveRequest, error) {
	var leaves []model.LeaveRequest
	err := r.db.Where("employee_id = ?", employeeID).Order("applied_date desc").Find(&leaves).Error
	return leaves, err
}

func (r *leaveRepository) GetAll() ([]model.LeaveRequest, error) {
	var leaves []model.LeaveRequest
	err := r.db.Preload("Employee").Order("applied_date desc").Find(&leaves).Error
	return leaves, err
}

// Approve flips the request to Approved and debits the employee's balance in
// one transaction. Both updates are conditional: the status update only
// matches a Pending row, the debit only matches when the balance covers the
// day count. A zero-row outcome on either aborts and rolls back the other,
// so two concurrent approvals resolve to exactly one debit.
func (r *leaveRepository) Approve(leave *model.LeaveRequest) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.LeaveRequest{}).
			Where("id = ? AND status = ?", leave.ID, model.LeaveStatusPending).
			Update("status", model.LeaveStatusApproved)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrLeaveProcessed
		}

		res = tx.Model(&model.Employee{}).
			Where("id = ? AND leave_balance >= ?", leave.EmployeeID, leave.TotalDays).
			UpdateColumn("leave_balance", gorm.Expr("leave_balance - ?", leave.TotalDays))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrInsufficientBalance
		}
		return nil
	})
}

// Reject is the same conditional status flip without any balance effect.
func (r *leaveRepository) Reject(leave *model.LeaveRequest) error {
	res := r.db.Model(&model.LeaveRequest{}).
		Where("id = ? AND status = ?", leave.ID, model.LeaveStatusPending).
		Update("status", model.LeaveStatusRejected)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrLeaveProcessed
	}
	return nil
}
