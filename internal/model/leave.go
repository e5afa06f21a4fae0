package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

type LeaveRequest struct {
	gorm.Model
	EmployeeID  uint      `json:"employee_id" gorm:"not null;index"`
	Employee    Employee  `json:"employee" gorm:"foreignKey:EmployeeID"`
	Type        string    `json:"type"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalDays   int       `json:"total_days"`
	Status      string    `json:"status" gorm:"not null;default:Pending"`
	Reason      string    `json:"reason"`
	AppliedDate time.Time `json:"applied_date"`
}
