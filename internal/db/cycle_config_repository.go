package db

import (
	"github.com/cyra-health/cyra/internal/models"
	"gorm.io/gorm"
)

type CycleConfigRepository struct {
	database *gorm.DB
}

func NewCycleConfigRepository(database *gorm.DB) *CycleConfigRepository {
	return &CycleConfigRepository{database: database}
}

// Create appends a new config epoch; existing epochs are never mutated.
func (repo *CycleConfigRepository) Create(config *models.CycleConfig) error {
	return repo.database.Create(config).Error
}

func (repo *CycleConfigRepository) LatestByUser(userID uint) (models.CycleConfig, bool, error) {
	config := models.CycleConfig{}
	result := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&config)
	if result.Error != nil {
		return models.CycleConfig{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.CycleConfig{}, false, nil
	}
	return config, true, nil
}

func (repo *CycleConfigRepository) ListByUser(userID uint) ([]models.CycleConfig, error) {
	configs := make([]models.CycleConfig, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&configs).Error; err != nil {
		return nil, err
	}
	return configs, nil
}
