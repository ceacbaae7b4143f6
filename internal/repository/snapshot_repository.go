package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/giladbarnea/assetvista-core/internal/domain"
	"github.com/giladbarnea/assetvista-core/internal/storage"
)

type SnapshotRepository interface {
	List(ctx context.Context) ([]domain.PortfolioSnapshot, error)
	Create(ctx context.Context, snapshot *domain.PortfolioSnapshot) error
	Update(ctx context.Context, snapshot *domain.PortfolioSnapshot) error
	Delete(ctx context.Context, id string) error
}

type BlobSnapshotRepository struct {
	col collection[domain.PortfolioSnapshot]
}

func NewSnapshotRepository(docs storage.DocumentStore) *BlobSnapshotRepository {
	return &BlobSnapshotRepository{col: collection[domain.PortfolioSnapshot]{docs: docs, key: snapshotsKey}}
}

func (r *BlobSnapshotRepository) List(ctx context.Context) ([]domain.PortfolioSnapshot, error) {
	return r.col.list(ctx)
}

func (r *BlobSnapshotRepository) Create(ctx context.Context, snapshot *domain.PortfolioSnapshot) error {
	now := time.Now().UTC()
	snapshot.ID = uuid.New().String()
	if snapshot.SnapshotDate == "" {
		snapshot.SnapshotDate = now.Format(time.DateOnly)
	}
	snapshot.CreatedAt = now
	snapshot.UpdatedAt = now
	return r.col.upsert(ctx, *snapshot)
}

func (r *BlobSnapshotRepository) Update(ctx context.Context, snapshot *domain.PortfolioSnapshot) error {
	records, err := r.col.list(ctx)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	snapshot.UpdatedAt = now
	replaced := false
	for i := range records {
		if records[i].ID == snapshot.ID {
			snapshot.CreatedAt = records[i].CreatedAt
			records[i] = *snapshot
			replaced = true
			break
		}
	}
	if !replaced {
		snapshot.CreatedAt = now
		records = append(records, *snapshot)
	}
	return r.col.replace(ctx, records)
}

func (r *BlobSnapshotRepository) Delete(ctx context.Context, id string) error {
	return r.col.deleteByID(ctx, id)
}
