package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eoapi/internal/models"
)

type KeyValueRepository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type keyValueRepository struct {
	db *gorm.DB
}

func NewKeyValueRepository(db *gorm.DB) KeyValueRepository {
	return &keyValueRepository{db: db}
}

func (r *keyValueRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var kv models.KeyValue
	if err := r.db.WithContext(ctx).Where("storage_key = ?", key).Take(&kv).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return kv.Value, true, nil
}

func (r *keyValueRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}
	record := models.KeyValue{Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&record).Error
}

func (r *keyValueRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("storage_key = ?", key).Delete(&models.KeyValue{}).Error
}
