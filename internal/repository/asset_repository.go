package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/giladbarnea/assetvista-core/internal/domain"
	"github.com/giladbarnea/assetvista-core/internal/storage"
)

type AssetRepository interface {
	List(ctx context.Context) ([]domain.Asset, error)
	Create(ctx context.Context, asset *domain.Asset) error
	Update(ctx context.Context, asset *domain.Asset) error
	Delete(ctx context.Context, id string) error
}

type BlobAssetRepository struct {
	col collection[domain.Asset]
}

func NewAssetRepository(docs storage.DocumentStore) *BlobAssetRepository {
	return &BlobAssetRepository{col: collection[domain.Asset]{docs: docs, key: assetsKey}}
}

func (r *BlobAssetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	return r.col.list(ctx)
}

// Create assigns a fresh identifier and stamps both timestamps with the same
// instant.
func (r *BlobAssetRepository) Create(ctx context.Context, asset *domain.Asset) error {
	now := time.Now().UTC()
	asset.ID = uuid.New().String()
	asset.CreatedAt = now
	asset.UpdatedAt = now
	return r.col.upsert(ctx, *asset)
}

// Update refreshes the update timestamp and keeps the creation timestamp from
// the stored record, ignoring whatever the caller supplied. An unknown id is
// stored as a fresh record.
func (r *BlobAssetRepository) Update(ctx context.Context, asset *domain.Asset) error {
	records, err := r.col.list(ctx)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	asset.UpdatedAt = now
	replaced := false
	for i := range records {
		if records[i].ID == asset.ID {
			asset.CreatedAt = records[i].CreatedAt
			records[i] = *asset
			replaced = true
			break
		}
	}
	if !replaced {
		asset.CreatedAt = now
		records = append(records, *asset)
	}
	return r.col.replace(ctx, records)
}

func (r *BlobAssetRepository) Delete(ctx context.Context, id string) error {
	return r.col.deleteByID(ctx, id)
}
