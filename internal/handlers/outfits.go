package handlers

import (
	"OutfitLab/internal/middleware"
	"OutfitLab/internal/outfit"
	"OutfitLab/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OutfitsHandler обрабатывает подбор и сохранение комбинаций.
type OutfitsHandler struct {
	RecService    *service.RecommendationService
	OutfitService *service.OutfitService
	Logger        *zap.SugaredLogger
	validate      *validator.Validate
}

// NewOutfitsHandler создаёт хендлер комбинаций
func NewOutfitsHandler(recService *service.RecommendationService, outfitService *service.OutfitService, logger *zap.SugaredLogger) *OutfitsHandler {
	return &OutfitsHandler{
		RecService:    recService,
		OutfitService: outfitService,
		Logger:        logger,
		validate:      validator.New(),
	}
}

// SaveRequest — тело запроса save/unsave.
type SaveRequest struct {
	UploadID string             `json:"upload_id" validate:"required"`
	Outfit   outfit.Combination `json:"outfit"`
	OutfitID string             `json:"outfit_id"`
	Upload   *outfit.UserUpload `json:"upload,omitempty"`
}

// SavedOutfitDTO — элемент выдачи saved.
type SavedOutfitDTO struct {
	Outfit   outfit.Combination `json:"outfit"`
	UploadID string             `json:"upload_id"`
	SavedAt  string             `json:"saved_at"`
}

// Provide создаёт загрузку и возвращает подобранные комбинации.
func (h *OutfitsHandler) Provide(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req service.ProvideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Provide: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.Logger.Warnw("Provide: validation failed", "error", err)
		http.Error(w, "type and color are required", http.StatusBadRequest)
		return
	}

	res, err := h.RecService.Provide(r.Context(), userID, req)
	if err != nil {
		h.Logger.Errorw("Provide: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(res)
}

// Save сохраняет комбинацию. Повторное сохранение той же пары отвечает 200,
// новая запись — 201.
func (h *OutfitsHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Save: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.UploadID == "" || req.Outfit.ID == "" {
		http.Error(w, "upload_id and outfit are required", http.StatusBadRequest)
		return
	}

	created, err := h.OutfitService.Save(r.Context(), userID, req.UploadID, req.Outfit, req.Upload)
	if err != nil {
		h.Logger.Errorw("Save: service error", "user_id", userID, "upload_id", req.UploadID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if created {
		w.WriteHeader(http.StatusCreated)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"upload_id": req.UploadID,
		"outfit_id": req.Outfit.ID,
		"created":   created,
	})
}

// Unsave убирает сохранённую комбинацию; отсутствие записи — тоже 200.
func (h *OutfitsHandler) Unsave(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Unsave: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	outfitID := req.OutfitID
	if outfitID == "" {
		outfitID = req.Outfit.ID
	}
	if req.UploadID == "" || outfitID == "" {
		http.Error(w, "upload_id and outfit_id are required", http.StatusBadRequest)
		return
	}

	removed, err := h.OutfitService.Unsave(r.Context(), userID, req.UploadID, outfitID)
	if err != nil {
		h.Logger.Errorw("Unsave: service error", "user_id", userID, "upload_id", req.UploadID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"upload_id": req.UploadID,
		"outfit_id": outfitID,
		"removed":   removed,
	})
}

// Saved список сохранённых комбинаций по загрузке; uploadID "all" — все.
func (h *OutfitsHandler) Saved(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	uploadID := chi.URLParam(r, "uploadID")
	saved, err := h.OutfitService.Saved(r.Context(), userID, uploadID)
	if err != nil {
		h.Logger.Errorw("Saved: service error", "user_id", userID, "upload_id", uploadID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]SavedOutfitDTO, 0, len(saved))
	for _, s := range saved {
		out = append(out, SavedOutfitDTO{
			Outfit:   s.Combo,
			UploadID: s.UploadID,
			SavedAt:  s.SavedAt.UTC().Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{"saved_outfits": out})
}

// UploadCombinations отдаёт комбинации, сгенерированные для загрузки.
func (h *OutfitsHandler) UploadCombinations(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	uploadID := chi.URLParam(r, "uploadID")
	combos, err := h.RecService.UploadCombinations(r.Context(), uploadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "upload not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("UploadCombinations: service error", "upload_id", uploadID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{"id": uploadID, "outfits": combos})
}

// Uploads список загрузок пользователя.
func (h *OutfitsHandler) Uploads(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ups, err := h.OutfitService.Uploads(r.Context(), userID)
	if err != nil {
		h.Logger.Errorw("Uploads: service error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]map[string]any, 0, len(ups))
	for _, u := range ups {
		out = append(out, map[string]any{
			"id":         u.UniqueID,
			"type":       u.Type,
			"color":      u.Color,
			"gender":     u.Gender,
			"usage":      u.Usage,
			"image_url":  u.ImageURL,
			"created_at": u.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{"uploads": out})
}
