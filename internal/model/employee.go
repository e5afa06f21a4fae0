package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

// DefaultLeaveBalance is granted to every employee at registration.
const DefaultLeaveBalance = 20

type Employee struct {
	gorm.Model
	Name         string    `json:"name"`
	Email        string    `json:"email" gorm:"unique;not null"`
	Password     string    `json:"-"`
	Role         string    `json:"role" gorm:"not null;default:employee"`
	JoiningDate  time.Time `json:"joining_date"`
	LeaveBalance int       `json:"leave_balance" gorm:"not null;default:20"`
}
