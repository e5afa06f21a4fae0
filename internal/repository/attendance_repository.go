package repository

import (
	"hr-portal-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository interface {
	Create(record *model.AttendanceRecord) error
	GetByEmployeeID(employeeID uint) ([]model.AttendanceRecord, error)
	GetAll() ([]model.AttendanceRecord, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

// Create inserts the record as-is. The unique (employee_id, date) index makes
// the insert the atomic duplicate check; callers translate
// gorm.ErrDuplicatedKey into the domain error.
func (r *attendanceRepository) Create(record *model.AttendanceRecord) error {
	return r.db.Omit(clause.Associations).Create(record).Error
}

func (r *attendanceRepository) GetByEmployeeID(employeeID uint) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.Where("employee_id = ?", employeeID).Order("date desc").Find(&records).Error
	return records, err
}

func (r *attendanceRepository) GetAll() ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.Preload("Employee").Order("date desc").Find(&records).Error
	return records, err
}
