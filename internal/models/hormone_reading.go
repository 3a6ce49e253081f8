package models

import "time"

const (
	HormoneSourceManual = "manual"
	HormoneSourceLab    = "lab"
	HormoneSourceHome   = "home"
	HormoneSourceDoctor = "doctor"
)

// A zero channel value means "not measured", not a measured zero.
type HormoneReading struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index:idx_hormone_user_date"`
	Date         time.Time `gorm:"not null;index:idx_hormone_user_date"`
	Estrogen     float64   `gorm:"not null;default:0"`
	Progesterone float64   `gorm:"not null;default:0"`
	LH           float64   `gorm:"column:lh;not null;default:0"`
	FSH          float64   `gorm:"column:fsh;not null;default:0"`
	Testosterone float64   `gorm:"not null;default:0"`
	Cortisol     float64   `gorm:"not null;default:0"`
	CycleDay     int       `gorm:"not null;default:0"`
	Source       string    `gorm:"not null;default:manual"`
	CreatedAt    time.Time
}

func IsValidHormoneSource(source string) bool {
	switch source {
	case HormoneSourceManual, HormoneSourceLab, HormoneSourceHome, HormoneSourceDoctor:
		return true
	default:
		return false
	}
}
