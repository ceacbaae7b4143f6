package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/giladbarnea/assetvista-core/internal/domain"
	"github.com/giladbarnea/assetvista-core/internal/http/response"
	"github.com/giladbarnea/assetvista-core/internal/repository"
)

type LiquidationSettingsHandler struct {
	repo   repository.LiquidationSettingsRepository
	logger *slog.Logger
}

func NewLiquidationSettingsHandler(repo repository.LiquidationSettingsRepository, logger *slog.Logger) *LiquidationSettingsHandler {
	return &LiquidationSettingsHandler{repo: repo, logger: logger}
}

func (h *LiquidationSettingsHandler) List(w http.ResponseWriter, r *http.Request) {
	settings, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("list liquidation settings failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch liquidation settings")
		return
	}
	response.JSON(w, http.StatusOK, settings)
}

func (h *LiquidationSettingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var setting domain.AssetLiquidationSettings
	if err := json.NewDecoder(r.Body).Decode(&setting); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.repo.Create(r.Context(), &setting); err != nil {
		h.logger.Error("create liquidation setting failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to create liquidation setting")
		return
	}
	response.JSON(w, http.StatusOK, setting)
}

func (h *LiquidationSettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var setting domain.AssetLiquidationSettings
	if err := json.NewDecoder(r.Body).Decode(&setting); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if setting.ID == "" {
		response.Error(w, http.StatusBadRequest, "Setting ID is required")
		return
	}
	if err := h.repo.Update(r.Context(), &setting); err != nil {
		h.logger.Error("update liquidation setting failed", "id", setting.ID, "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to update liquidation setting")
		return
	}
	response.JSON(w, http.StatusOK, setting)
}

func (h *LiquidationSettingsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		response.Error(w, http.StatusBadRequest, "Setting ID is required")
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete liquidation setting failed", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to delete liquidation setting")
		return
	}
	response.OK(w)
}
