package models

import "time"

const (
	MinMoodLevel = 1
	MaxMoodLevel = 10
)

type MoodEntry struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index:idx_mood_user_date"`
	Date        time.Time `gorm:"not null;index:idx_mood_user_date"`
	Mood        string    `gorm:"not null"`
	EnergyLevel int       `gorm:"not null;default:5"`
	StressLevel int       `gorm:"not null;default:5"`
	Notes       string
	CycleDay    int `gorm:"not null;default:0"`
	CreatedAt   time.Time
}
