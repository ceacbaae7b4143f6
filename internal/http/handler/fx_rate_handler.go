package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/giladbarnea/assetvista-core/internal/domain"
	"github.com/giladbarnea/assetvista-core/internal/http/response"
	"github.com/giladbarnea/assetvista-core/internal/repository"
)

type FXRateHandler struct {
	repo   repository.FXRateRepository
	logger *slog.Logger
}

func NewFXRateHandler(repo repository.FXRateRepository, logger *slog.Logger) *FXRateHandler {
	return &FXRateHandler{repo: repo, logger: logger}
}

func (h *FXRateHandler) List(w http.ResponseWriter, r *http.Request) {
	rates, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("list fx rates failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch FX rates")
		return
	}
	response.JSON(w, http.StatusOK, rates)
}

// Upsert serves both POST and PUT: the body is an array of rate entries,
// merged into the stored document by currency code.
func (h *FXRateHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var rates []domain.FXRateData
	if err := json.NewDecoder(r.Body).Decode(&rates); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	stamped, err := h.repo.Upsert(r.Context(), rates)
	if err != nil {
		h.logger.Error("update fx rates failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to update FX rates")
		return
	}
	response.JSON(w, http.StatusOK, stamped)
}

func (h *FXRateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	currency := r.URL.Query().Get("currency")
	if currency == "" {
		response.Error(w, http.StatusBadRequest, "Currency code is required")
		return
	}
	if err := h.repo.Delete(r.Context(), domain.Currency(currency)); err != nil {
		h.logger.Error("delete fx rate failed", "currency", currency, "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to delete FX rate")
		return
	}
	response.OK(w)
}
