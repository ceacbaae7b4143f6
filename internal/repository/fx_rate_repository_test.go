package repository

import (
	"context"
	"testing"

	"github.com/giladbarnea/assetvista-core/internal/domain"
)

func TestFXRateRepositoryUpsertMergesByCurrency(t *testing.T) {
	repo := NewFXRateRepository(newMemDocumentStore())
	ctx := context.Background()

	first := []domain.FXRateData{
		{Currency: domain.CurrencyEUR, ToUSDRate: 1.08, ToILSRate: 4.0, Source: "api"},
		{Currency: domain.CurrencyCHF, ToUSDRate: 1.12, ToILSRate: 4.1, Source: "api"},
	}
	if _, err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	second := []domain.FXRateData{
		{Currency: domain.CurrencyEUR, ToUSDRate: 1.10, ToILSRate: 4.05, Source: "manual", IsManualOverride: true},
	}
	stamped, err := repo.Upsert(ctx, second)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if len(stamped) != 1 || stamped[0].LastUpdated.IsZero() {
		t.Fatalf("expected stamped result, got %+v", stamped)
	}

	rates, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rates) != 2 {
		t.Fatalf("expected 2 unique currencies, got %d", len(rates))
	}
	// EUR keeps its original sequence position with the replacement value.
	if rates[0].Currency != domain.CurrencyEUR || rates[0].ToUSDRate != 1.10 || !rates[0].IsManualOverride {
		t.Fatalf("EUR not replaced in place: %+v", rates[0])
	}
	if rates[1].Currency != domain.CurrencyCHF {
		t.Fatalf("CHF lost: %+v", rates)
	}
}

func TestFXRateRepositoryUpsertDeduplicatesInput(t *testing.T) {
	repo := NewFXRateRepository(newMemDocumentStore())
	ctx := context.Background()

	rates := []domain.FXRateData{
		{Currency: domain.CurrencyCAD, ToUSDRate: 0.70},
		{Currency: domain.CurrencyCAD, ToUSDRate: 0.72},
	}
	if _, err := repo.Upsert(ctx, rates); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	stored, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected single CAD entry, got %d", len(stored))
	}
	if stored[0].ToUSDRate != 0.72 {
		t.Fatalf("expected last entry to win, got rate %v", stored[0].ToUSDRate)
	}
}

func TestFXRateRepositoryDelete(t *testing.T) {
	repo := NewFXRateRepository(newMemDocumentStore())
	ctx := context.Background()

	if _, err := repo.Upsert(ctx, []domain.FXRateData{
		{Currency: domain.CurrencyEUR, ToUSDRate: 1.08},
		{Currency: domain.CurrencyHKD, ToUSDRate: 0.13},
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if err := repo.Delete(ctx, domain.CurrencyEUR); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, domain.CurrencyEUR); err != nil {
		t.Fatalf("Delete absent currency: %v", err)
	}

	rates, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rates) != 1 || rates[0].Currency != domain.CurrencyHKD {
		t.Fatalf("unexpected rates after delete: %+v", rates)
	}
}
