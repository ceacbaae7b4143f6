package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/giladbarnea/assetvista-core/internal/domain"
)

type stubFXRateRepository struct {
	listFn   func(ctx context.Context) ([]domain.FXRateData, error)
	upsertFn func(ctx context.Context, rates []domain.FXRateData) ([]domain.FXRateData, error)
	deleteFn func(ctx context.Context, currency domain.Currency) error
}

func (s *stubFXRateRepository) List(ctx context.Context) ([]domain.FXRateData, error) {
	if s.listFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.listFn(ctx)
}

func (s *stubFXRateRepository) Upsert(ctx context.Context, rates []domain.FXRateData) ([]domain.FXRateData, error) {
	if s.upsertFn == nil {
		return nil, errors.New("not implemented")
	}
	return s.upsertFn(ctx, rates)
}

func (s *stubFXRateRepository) Delete(ctx context.Context, currency domain.Currency) error {
	if s.deleteFn == nil {
		return errors.New("not implemented")
	}
	return s.deleteFn(ctx, currency)
}

func TestFXRateUpsertStampsAndReturnsRates(t *testing.T) {
	repo := &stubFXRateRepository{
		upsertFn: func(_ context.Context, rates []domain.FXRateData) ([]domain.FXRateData, error) {
			if len(rates) != 2 {
				t.Fatalf("expected 2 rates, got %d", len(rates))
			}
			now := time.Now().UTC()
			for i := range rates {
				rates[i].LastUpdated = now
			}
			return rates, nil
		},
	}
	h := NewFXRateHandler(repo, discardLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/fx-rates",
		strings.NewReader(`[{"currency":"EUR","to_usd_rate":1.08},{"currency":"CHF","to_usd_rate":1.12}]`))
	rec := httptest.NewRecorder()
	h.Upsert(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	var body struct {
		Success bool                `json:"success"`
		Data    []domain.FXRateData `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Data) != 2 || body.Data[0].LastUpdated.IsZero() {
		t.Fatalf("unexpected data %+v", body.Data)
	}
}

func TestFXRateUpsertRejectsNonArrayBody(t *testing.T) {
	h := NewFXRateHandler(&stubFXRateRepository{}, discardLogger())
	req := httptest.NewRequest(http.MethodPost, "/api/fx-rates", strings.NewReader(`{"currency":"EUR"}`))
	rec := httptest.NewRecorder()
	h.Upsert(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
}

func TestFXRateDeleteRequiresCurrency(t *testing.T) {
	h := NewFXRateHandler(&stubFXRateRepository{}, discardLogger())
	rec := httptest.NewRecorder()
	h.Delete(rec, httptest.NewRequest(http.MethodDelete, "/api/fx-rates", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}

	deleted := domain.Currency("")
	repo := &stubFXRateRepository{
		deleteFn: func(_ context.Context, currency domain.Currency) error {
			deleted = currency
			return nil
		},
	}
	h = NewFXRateHandler(repo, discardLogger())
	rec = httptest.NewRecorder()
	h.Delete(rec, httptest.NewRequest(http.MethodDelete, "/api/fx-rates?currency=EUR", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d", rec.Code)
	}
	if deleted != domain.CurrencyEUR {
		t.Fatalf("deleted=%q", deleted)
	}
}
