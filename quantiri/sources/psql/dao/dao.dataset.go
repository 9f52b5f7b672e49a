package dao

import (
	"context"
	"quantiri/quantiri/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DatasetDAO struct {
	DB *gorm.DB
}

func NewDatasetDAO(db *gorm.DB) *DatasetDAO {
	return &DatasetDAO{DB: db}
}

func (dao *DatasetDAO) CreateDataset(ctx context.Context, dataset *models.Dataset) error {
	return dao.DB.WithContext(ctx).Create(dataset).Error
}

func (dao *DatasetDAO) GetDatasetByID(ctx context.Context, id uuid.UUID) (*models.Dataset, error) {
	var dataset models.Dataset
	err := dao.DB.WithContext(ctx).Where("id = ?", id).First(&dataset).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dataset, nil
}

// GetDatasetsByUser lists the caller's datasets, newest first, without
// the preview rows (they can be large; fetch one dataset for the rows).
func (dao *DatasetDAO) GetDatasetsByUser(ctx context.Context, userID uuid.UUID) ([]models.Dataset, error) {
	var datasets []models.Dataset
	err := dao.DB.WithContext(ctx).
		Select("id", "user_id", "file_name", "file_size", "columns", "row_count", "created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&datasets).Error
	if err != nil {
		return nil, err
	}
	return datasets, nil
}
