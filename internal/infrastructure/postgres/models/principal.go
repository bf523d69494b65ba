package models

import (
	"time"

	"github.com/securebank/payment-portal-service/internal/domain"
)

type CustomerModel struct {
	ID             string `gorm:"primaryKey;type:uuid"`
	FullName       string `gorm:"not null"`
	IDNumber       string `gorm:"not null;uniqueIndex"`
	AccountNumber  string `gorm:"not null;uniqueIndex"`
	Username       string `gorm:"not null;uniqueIndex"`
	PasswordHash   string `gorm:"not null"`
	IsActive       bool   `gorm:"not null;default:true"`
	FailedAttempts int    `gorm:"not null;default:0"`
	LockUntil      *time.Time
	LastLogin      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type EmployeeModel struct {
	ID             string              `gorm:"primaryKey;type:uuid"`
	EmployeeNumber string              `gorm:"not null;uniqueIndex"`
	Username       string              `gorm:"not null;uniqueIndex"`
	FullName       string              `gorm:"not null"`
	PasswordHash   string              `gorm:"not null"`
	Role           domain.EmployeeRole `gorm:"not null"`
	Department     string
	IsActive       bool `gorm:"not null;default:true"`
	FailedAttempts int  `gorm:"not null;default:0"`
	LockUntil      *time.Time
	LastLogin      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
