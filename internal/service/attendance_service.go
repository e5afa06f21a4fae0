package service

import (
	"errors"
	"time"

	"hr-portal-backend/internal/domain"
	"hr-portal-backend/internal/model"
	"hr-portal-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AttendanceService struct {
	repo   repository.AttendanceRepository
	logger *logrus.Logger
}

func NewAttendanceService(repo repository.AttendanceRepository) *AttendanceService {
	return &AttendanceService{
		repo:   repo,
		logger: logrus.New(),
	}
}

// normalizeDay truncates a timestamp to midnight local time, the calendar-day
// granularity attendance is kept at.
func normalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// Mark records one attendance status for the employee on the given day. A
// zero date defaults to today. Future days are refused, and a second record
// for the same (employee, day) pair fails on the storage-level unique index,
// never by an application-side existence check.
func (s *AttendanceService) Mark(employeeID uint, date time.Time, status string) (*model.AttendanceRecord, error) {
	if date.IsZero() {
		date = time.Now()
	}
	day := normalizeDay(date)
	today := normalizeDay(time.Now())

	if day.After(today) {
		return nil, domain.ErrFutureAttendance
	}

	record := &model.AttendanceRecord{
		EmployeeID: employeeID,
		Date:       day,
		Status:     status,
	}
	if err := s.repo.Create(record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAttendanceMarked
		}
		s.logger.WithError(err).WithField("employee_id", employeeID).Error("failed to create attendance record")
		return nil, err
	}
	return record, nil
}

// History returns the employee's own records, newest day first.
func (s *AttendanceService) History(employeeID uint) ([]model.AttendanceRecord, error) {
	return s.repo.GetByEmployeeID(employeeID)
}

// All returns every record with the owning employee preloaded. Admin scoping
// is the route middleware's job, not this service's.
func (s *AttendanceService) All() ([]model.AttendanceRecord, error) {
	return s.repo.GetAll()
}
