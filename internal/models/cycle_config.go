package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5

	MinCycleLength  = 21
	MaxCycleLength  = 35
	MinPeriodLength = 2
	MaxPeriodLength = 8
)

// CycleConfig rows are append-only: a settings edit or a newly logged
// period start creates a fresh epoch, and the most recent row wins.
type CycleConfig struct {
	ID              uint       `gorm:"primaryKey"`
	UserID          uint       `gorm:"not null;index"`
	CycleLength     int        `gorm:"not null;default:28"`
	PeriodLength    int        `gorm:"not null;default:5"`
	LastPeriodStart *time.Time `gorm:"type:date"`
	CreatedAt       time.Time  `gorm:"not null"`
}
