package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/giladbarnea/assetvista-core/internal/domain"
	"github.com/giladbarnea/assetvista-core/internal/storage"
)

type LiquidationSettingsRepository interface {
	List(ctx context.Context) ([]domain.AssetLiquidationSettings, error)
	Create(ctx context.Context, setting *domain.AssetLiquidationSettings) error
	Update(ctx context.Context, setting *domain.AssetLiquidationSettings) error
	Delete(ctx context.Context, id string) error
}

type BlobLiquidationSettingsRepository struct {
	col collection[domain.AssetLiquidationSettings]
}

func NewLiquidationSettingsRepository(docs storage.DocumentStore) *BlobLiquidationSettingsRepository {
	return &BlobLiquidationSettingsRepository{col: collection[domain.AssetLiquidationSettings]{docs: docs, key: liquidationSettingsKey}}
}

func (r *BlobLiquidationSettingsRepository) List(ctx context.Context) ([]domain.AssetLiquidationSettings, error) {
	return r.col.list(ctx)
}

func (r *BlobLiquidationSettingsRepository) Create(ctx context.Context, setting *domain.AssetLiquidationSettings) error {
	now := time.Now().UTC()
	setting.ID = uuid.New().String()
	setting.CreatedAt = now
	setting.UpdatedAt = now
	return r.col.upsert(ctx, *setting)
}

func (r *BlobLiquidationSettingsRepository) Update(ctx context.Context, setting *domain.AssetLiquidationSettings) error {
	records, err := r.col.list(ctx)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	setting.UpdatedAt = now
	replaced := false
	for i := range records {
		if records[i].ID == setting.ID {
			setting.CreatedAt = records[i].CreatedAt
			records[i] = *setting
			replaced = true
			break
		}
	}
	if !replaced {
		setting.CreatedAt = now
		records = append(records, *setting)
	}
	return r.col.replace(ctx, records)
}

func (r *BlobLiquidationSettingsRepository) Delete(ctx context.Context, id string) error {
	return r.col.deleteByID(ctx, id)
}
