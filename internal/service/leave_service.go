package service

import (
	"errors"
	"math"
	"time"

	"hr-portal-backend/internal/domain"
	"hr-portal-backend/internal/model"
	"hr-portal-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// LeaveService is the leave ledger plus the balance authority: the only code
// path allowed to mutate an employee's leave balance is Approve.
type LeaveService struct {
	repo   repository.LeaveRepository
	logger *logrus.Logger
}

func NewLeaveService(repo repository.LeaveRepository) *LeaveService {
	return &LeaveService{
		repo:   repo,
		logger: logrus.New(),
	}
}

// totalDays counts calendar days with both boundary days inclusive:
// Jan 1 .. Jan 3 is 3 days. Rounding absorbs the odd-length days around DST
// transitions.
func totalDays(start, end time.Time) int {
	diff := normalizeDay(end).Sub(normalizeDay(start)).Hours() / 24
	return int(math.Round(diff)) + 1
}

// Apply records a new Pending request. Date ordering and balance are not
// checked here: submission is deliberately permissive and all enforcement
// happens at approval time, so an inverted range is recorded with a
// non-positive day count.
func (s *LeaveService) Apply(employeeID uint, leaveType string, start, end time.Time, reason string) (*model.LeaveRequest, error) {
	leave := &model.LeaveRequest{
		EmployeeID:  employeeID,
		Type:        leaveType,
		StartDate:   normalizeDay(start),
		EndDate:     normalizeDay(end),
		TotalDays:   totalDays(start, end),
		Status:      model.LeaveStatusPending,
		Reason:      reason,
		AppliedDate: time.Now(),
	}
	if err := s.repo.Create(leave); err != nil {
		s.logger.WithError(err).WithField("employee_id", employeeID).Error("failed to create leave request")
		return nil, err
	}
	return leave, nil
}

// History returns the employee's own requests, newest application first.
func (s *LeaveService) History(employeeID uint) ([]model.LeaveRequest, error) {
	return s.repo.GetByEmployeeID(employeeID)
}

func (s *LeaveService) All() ([]model.LeaveRequest, error) {
	return s.repo.GetAll()
}

// Approve moves a Pending request to Approved and debits the owner's balance.
// The pre-checks give precise errors; the conditional updates inside
// repo.Approve are what actually guarantee a single terminal transition and a
// single debit when approvals race.
func (s *LeaveService) Approve(id uint) (*model.LeaveRequest, error) {
	leave, err := s.loadPending(id)
	if err != nil {
		return nil, err
	}
	if leave.TotalDays < 1 {
		return nil, domain.ErrInvalidLeaveRange
	}

	if err := s.repo.Approve(leave); err != nil {
		return nil, err
	}

	leave.Status = model.LeaveStatusApproved
	leave.Employee.LeaveBalance -= leave.TotalDays
	s.logger.WithFields(logrus.Fields{
		"leave_id":    leave.ID,
		"employee_id": leave.EmployeeID,
		"total_days":  leave.TotalDays,
	}).Info("leave approved")
	return leave, nil
}

// Reject moves a Pending request to Rejected. The balance is never touched.
func (s *LeaveService) Reject(id uint) (*model.LeaveRequest, error) {
	leave, err := s.loadPending(id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Reject(leave); err != nil {
		return nil, err
	}

	leave.Status = model.LeaveStatusRejected
	s.logger.WithFields(logrus.Fields{
		"leave_id":    leave.ID,
		"employee_id": leave.EmployeeID,
	}).Info("leave rejected")
	return leave, nil
}

func (s *LeaveService) loadPending(id uint) (*model.LeaveRequest, error) {
	leave, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeaveNotFound
		}
		return nil, err
	}
	if leave.Status != model.LeaveStatusPending {
		return nil, domain.ErrLeaveProcessed
	}
	return leave, nil
}
