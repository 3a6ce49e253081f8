package db

import (
	"time"

	"github.com/cyra-health/cyra/internal/models"
	"gorm.io/gorm"
)

type SymptomRepository struct {
	database *gorm.DB
}

func NewSymptomRepository(database *gorm.DB) *SymptomRepository {
	return &SymptomRepository{database: database}
}

func (repo *SymptomRepository) Create(record *models.SymptomRecord) error {
	return repo.database.Create(record).Error
}

func (repo *SymptomRepository) ListByUser(userID uint) ([]models.SymptomRecord, error) {
	records := make([]models.SymptomRecord, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *SymptomRepository) ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.SymptomRecord, error) {
	records := make([]models.SymptomRecord, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *SymptomRepository) DeleteByIDForUser(recordID uint, userID uint) (bool, error) {
	result := repo.database.
		Where("id = ? AND user_id = ?", recordID, userID).
		Delete(&models.SymptomRecord{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
