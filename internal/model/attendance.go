package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

// AttendanceRecord holds one status per employee per calendar day. The
// composite unique index is what closes the check-then-insert race on
// concurrent submissions for the same day.
type AttendanceRecord struct {
	gorm.Model
	EmployeeID uint      `json:"employee_id" gorm:"not null;uniqueIndex:idx_attendance_employee_date"`
	Employee   Employee  `json:"employee" gorm:"foreignKey:EmployeeID"`
	Date       time.Time `json:"date" gorm:"not null;uniqueIndex:idx_attendance_employee_date"`
	Status     string    `json:"status" gorm:"not null"`
}
