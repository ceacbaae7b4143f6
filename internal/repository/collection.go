// Package repository layers per-collection read-modify-write helpers on the
// document store. Every mutation reads the full document, edits it in memory,
// and writes the full sequence back; the last writer wins on the whole
// document. That is the backing store's contract and it is intentionally not
// hidden: serializing access belongs to a stronger store, not this layer.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/giladbarnea/assetvista-core/internal/storage"
)

// Storage keys, one JSON array document per collection.
const (
	assetsKey              = "portfolio/assets.json"
	snapshotsKey           = "portfolio/snapshots.json"
	fxRatesKey             = "portfolio/fx-rates.json"
	liquidationSettingsKey = "portfolio/liquidation-settings.json"
)

// Record is any collection entry addressable by an opaque identifier.
type Record interface {
	RecordID() string
}

type collection[T Record] struct {
	docs storage.DocumentStore
	key  string
}

// list returns the full document. An absent document reads as an empty
// sequence; any other failure propagates.
func (c collection[T]) list(ctx context.Context) ([]T, error) {
	data, err := c.docs.Read(ctx, c.key)
	if errors.Is(err, storage.ErrDocumentNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c collection[T]) replace(ctx context.Context, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	return c.docs.Write(ctx, c.key, data)
}

// upsert replaces the record with the same identifier in place, preserving
// sequence position, or appends when absent.
func (c collection[T]) upsert(ctx context.Context, record T) error {
	records, err := c.list(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range records {
		if records[i].RecordID() == record.RecordID() {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}
	return c.replace(ctx, records)
}

// deleteByID filters out the matching record. Deleting an absent id is a
// no-op success.
func (c collection[T]) deleteByID(ctx context.Context, id string) error {
	records, err := c.list(ctx)
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, r := range records {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}
	return c.replace(ctx, kept)
}
