package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a registered identity able to own elevator records.
// The password hash is never serialized in API responses.
type User struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"default:''" json:"name"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
