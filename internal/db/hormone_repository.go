package db

import (
	"time"

	"github.com/cyra-health/cyra/internal/models"
	"gorm.io/gorm"
)

type HormoneRepository struct {
	database *gorm.DB
}

func NewHormoneRepository(database *gorm.DB) *HormoneRepository {
	return &HormoneRepository{database: database}
}

func (repo *HormoneRepository) Create(reading *models.HormoneReading) error {
	return repo.database.Create(reading).Error
}

func (repo *HormoneRepository) ListByUser(userID uint) ([]models.HormoneReading, error) {
	readings := make([]models.HormoneReading, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}

func (repo *HormoneRepository) ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.HormoneReading, error) {
	readings := make([]models.HormoneReading, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC, id ASC").
		Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}

func (repo *HormoneRepository) DeleteByIDForUser(readingID uint, userID uint) (bool, error) {
	result := repo.database.
		Where("id = ? AND user_id = ?", readingID, userID).
		Delete(&models.HormoneReading{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
