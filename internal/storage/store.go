// Package storage provides whole-document access to the blob store. Each
// collection lives under one fixed key and every write replaces the full
// document.
package storage

import (
	"context"
	"errors"
)

// ErrDocumentNotFound distinguishes "no document yet" from a failed read.
// Callers treat it as an empty collection; any other error must propagate so
// data loss is never masked as no data.
var ErrDocumentNotFound = errors.New("document not found")

type DocumentStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
