package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/giladbarnea/assetvista-core/internal/domain"
	"github.com/giladbarnea/assetvista-core/internal/http/response"
	"github.com/giladbarnea/assetvista-core/internal/repository"
)

type AssetHandler struct {
	repo   repository.AssetRepository
	logger *slog.Logger
}

func NewAssetHandler(repo repository.AssetRepository, logger *slog.Logger) *AssetHandler {
	return &AssetHandler{repo: repo, logger: logger}
}

func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	assets, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("list assets failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch assets")
		return
	}
	response.JSON(w, http.StatusOK, assets)
}

func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var asset domain.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.repo.Create(r.Context(), &asset); err != nil {
		h.logger.Error("create asset failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to create asset")
		return
	}
	response.JSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	var asset domain.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if asset.ID == "" {
		response.Error(w, http.StatusBadRequest, "Asset ID is required")
		return
	}
	if err := h.repo.Update(r.Context(), &asset); err != nil {
		h.logger.Error("update asset failed", "id", asset.ID, "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to update asset")
		return
	}
	response.JSON(w, http.StatusOK, asset)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		response.Error(w, http.StatusBadRequest, "Asset ID is required")
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete asset failed", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to delete asset")
		return
	}
	response.OK(w)
}
