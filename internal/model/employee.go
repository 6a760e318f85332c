package model

import "gorm.io/gorm"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type Employee struct {
	gorm.Model
	EmployeeID string `json:"employee_id" gorm:"column:employee_id;unique;not null"`
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"unique;not null"`
	Password   string `json:"-"`
	Role       string `json:"role" gorm:"default:employee"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`

	Sessions []AttendanceSession `json:"sessions,omitempty" gorm:"foreignKey:EmployeeID;references:EmployeeID"`
}
