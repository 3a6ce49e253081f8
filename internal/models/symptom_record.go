package models

import (
	"strings"
	"time"
)

const (
	SymptomCategoryPhysical     = "physical"
	SymptomCategoryEmotional    = "emotional"
	SymptomCategoryBehavioral   = "behavioral"
	SymptomCategoryReproductive = "reproductive"
)

const (
	MinSymptomSeverity = 1
	MaxSymptomSeverity = 5
)

// SymptomRecord is immutable once created; an edit deletes the row and
// inserts a replacement.
type SymptomRecord struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index:idx_symptom_user_date"`
	Date      time.Time `gorm:"not null;index:idx_symptom_user_date"`
	Category  string    `gorm:"not null;default:physical"`
	Name      string    `gorm:"not null"`
	Severity  int       `gorm:"not null;default:1"`
	Notes     string
	CycleDay  int `gorm:"not null;default:0"`
	CreatedAt time.Time
}

type CatalogSymptom struct {
	Name     string
	Category string
}

func DefaultSymptomCatalog() []CatalogSymptom {
	return []CatalogSymptom{
		{Name: "Cramps", Category: SymptomCategoryPhysical},
		{Name: "Headache", Category: SymptomCategoryPhysical},
		{Name: "Bloating", Category: SymptomCategoryPhysical},
		{Name: "Fatigue", Category: SymptomCategoryPhysical},
		{Name: "Breast tenderness", Category: SymptomCategoryReproductive},
		{Name: "Acne", Category: SymptomCategoryPhysical},
		{Name: "Back pain", Category: SymptomCategoryPhysical},
		{Name: "Nausea", Category: SymptomCategoryPhysical},
		{Name: "Spotting", Category: SymptomCategoryReproductive},
		{Name: "Mood swings", Category: SymptomCategoryEmotional},
		{Name: "Irritability", Category: SymptomCategoryEmotional},
		{Name: "Anxiety", Category: SymptomCategoryEmotional},
		{Name: "Insomnia", Category: SymptomCategoryBehavioral},
		{Name: "Food cravings", Category: SymptomCategoryBehavioral},
	}
}

func IsValidSymptomCategory(category string) bool {
	switch category {
	case SymptomCategoryPhysical, SymptomCategoryEmotional, SymptomCategoryBehavioral, SymptomCategoryReproductive:
		return true
	default:
		return false
	}
}

func CatalogCategoryForSymptom(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, entry := range DefaultSymptomCatalog() {
		if strings.ToLower(entry.Name) == normalized {
			return entry.Category
		}
	}
	return SymptomCategoryPhysical
}
