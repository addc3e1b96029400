package handlers

import (
	"OutfitLab/internal/model"
	"OutfitLab/internal/repo"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ItemsHandler отдаёт каталог одежды.
type ItemsHandler struct {
	CatalogRepo repo.CatalogRepository
	Logger      *zap.SugaredLogger
}

// NewItemsHandler создаёт хендлер каталога
func NewItemsHandler(catalogRepo repo.CatalogRepository, logger *zap.SugaredLogger) *ItemsHandler {
	return &ItemsHandler{CatalogRepo: catalogRepo, Logger: logger}
}

// List список вещей каталога. Параметр limit ограничивает выдачу.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	items, err := h.CatalogRepo.List(r.Context(), limit)
	if err != nil {
		h.Logger.Errorw("List: repo error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if len(items) == 0 {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "No items found"})
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"items":   items,
		"message": fmt.Sprintf("%d items found", len(items)),
	})
}

// Get одна вещь каталога по её id.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	clothID := chi.URLParam(r, "id")

	item, err := h.CatalogRepo.GetByClothID(r.Context(), clothID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]any{"message": "No cloth found"})
			return
		}
		h.Logger.Errorw("Get: repo error", "cloth_id", clothID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]*model.CatalogItem{"item": item})
}
