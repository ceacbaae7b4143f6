package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/giladbarnea/assetvista-core/internal/domain"
	"github.com/giladbarnea/assetvista-core/internal/storage"
)

// FXRateRepository is keyed by currency code rather than an opaque id.
// Uniqueness per currency is enforced on every write.
type FXRateRepository interface {
	List(ctx context.Context) ([]domain.FXRateData, error)
	Upsert(ctx context.Context, rates []domain.FXRateData) ([]domain.FXRateData, error)
	Delete(ctx context.Context, currency domain.Currency) error
}

type BlobFXRateRepository struct {
	docs storage.DocumentStore
}

func NewFXRateRepository(docs storage.DocumentStore) *BlobFXRateRepository {
	return &BlobFXRateRepository{docs: docs}
}

func (r *BlobFXRateRepository) List(ctx context.Context) ([]domain.FXRateData, error) {
	return r.read(ctx)
}

// Upsert stamps last_updated on each incoming rate and merges it into the
// stored document by currency code, replacing in place or appending. When the
// input itself repeats a currency, the last entry wins.
func (r *BlobFXRateRepository) Upsert(ctx context.Context, rates []domain.FXRateData) ([]domain.FXRateData, error) {
	stored, err := r.read(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	stamped := make([]domain.FXRateData, 0, len(rates))
	for _, rate := range rates {
		rate.LastUpdated = now
		stamped = append(stamped, rate)
		replaced := false
		for i := range stored {
			if stored[i].Currency == rate.Currency {
				stored[i] = rate
				replaced = true
				break
			}
		}
		if !replaced {
			stored = append(stored, rate)
		}
	}
	if err := r.write(ctx, stored); err != nil {
		return nil, err
	}
	return stamped, nil
}

func (r *BlobFXRateRepository) Delete(ctx context.Context, currency domain.Currency) error {
	stored, err := r.read(ctx)
	if err != nil {
		return err
	}
	kept := stored[:0]
	for _, rate := range stored {
		if rate.Currency != currency {
			kept = append(kept, rate)
		}
	}
	return r.write(ctx, kept)
}

func (r *BlobFXRateRepository) read(ctx context.Context) ([]domain.FXRateData, error) {
	data, err := r.docs.Read(ctx, fxRatesKey)
	if errors.Is(err, storage.ErrDocumentNotFound) {
		return []domain.FXRateData{}, nil
	}
	if err != nil {
		return nil, err
	}
	var rates []domain.FXRateData
	if err := json.Unmarshal(data, &rates); err != nil {
		return nil, fmt.Errorf("decode %s: %w", fxRatesKey, err)
	}
	if rates == nil {
		rates = []domain.FXRateData{}
	}
	return rates, nil
}

func (r *BlobFXRateRepository) write(ctx context.Context, rates []domain.FXRateData) error {
	data, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("encode %s: %w", fxRatesKey, err)
	}
	return r.docs.Write(ctx, fxRatesKey, data)
}
