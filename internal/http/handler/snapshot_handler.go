package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/giladbarnea/assetvista-core/internal/domain"
	"github.com/giladbarnea/assetvista-core/internal/http/response"
	"github.com/giladbarnea/assetvista-core/internal/repository"
)

type SnapshotHandler struct {
	repo   repository.SnapshotRepository
	logger *slog.Logger
}

func NewSnapshotHandler(repo repository.SnapshotRepository, logger *slog.Logger) *SnapshotHandler {
	return &SnapshotHandler{repo: repo, logger: logger}
}

func (h *SnapshotHandler) List(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("list snapshots failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to fetch snapshots")
		return
	}
	response.JSON(w, http.StatusOK, snapshots)
}

func (h *SnapshotHandler) Create(w http.ResponseWriter, r *http.Request) {
	var snapshot domain.PortfolioSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.repo.Create(r.Context(), &snapshot); err != nil {
		h.logger.Error("create snapshot failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to create snapshot")
		return
	}
	response.JSON(w, http.StatusOK, snapshot)
}

func (h *SnapshotHandler) Update(w http.ResponseWriter, r *http.Request) {
	var snapshot domain.PortfolioSnapshot
	if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if snapshot.ID == "" {
		response.Error(w, http.StatusBadRequest, "Snapshot ID is required")
		return
	}
	if err := h.repo.Update(r.Context(), &snapshot); err != nil {
		h.logger.Error("update snapshot failed", "id", snapshot.ID, "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to update snapshot")
		return
	}
	response.JSON(w, http.StatusOK, snapshot)
}

func (h *SnapshotHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		response.Error(w, http.StatusBadRequest, "Snapshot ID is required")
		return
	}
	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete snapshot failed", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "Failed to delete snapshot")
		return
	}
	response.OK(w)
}
