package handlers

import (
	"OutfitLab/internal/config"
	"OutfitLab/internal/middleware"
	"OutfitLab/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// UserHandler обрабатывает регистрацию, логин и обновление токена.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер пользователя
func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

// credentials — тело запросов register/login.
type credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// tokenResponse — пара токенов в ответе auth‑ручек.
type tokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

const refreshTokenTTL = 7 * 24 * time.Hour

func (h *UserHandler) issueTokens(w http.ResponseWriter, userID int64) (*tokenResponse, error) {
	if err := middleware.SetLoginCookie(w, userID, h.Config.AuthSecret); err != nil {
		return nil, err
	}
	access, err := middleware.BuildToken(userID, h.Config.AuthSecret, 24*time.Hour)
	if err != nil {
		return nil, err
	}
	refresh, err := middleware.BuildToken(userID, h.Config.AuthSecret, refreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &tokenResponse{Access: access, Refresh: refresh}, nil
}

// Register регистрация нового пользователя
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" || req.Password == "" {
		h.Logger.Warnw("Register: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrLoginTaken) {
			http.Error(w, "login already taken", http.StatusConflict)
			return
		}
		h.Logger.Errorw("Register: service error", "login", req.Login, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	tokens, err := h.issueTokens(w, user.ID)
	if err != nil {
		h.Logger.Errorw("Register: token error", "user_id", user.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(tokens)
}

// Login аутентификация по логину и паролю
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentials
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Login == "" || req.Password == "" {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			http.Error(w, "invalid login or password", http.StatusUnauthorized)
			return
		}
		h.Logger.Errorw("Login: service error", "login", req.Login, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	tokens, err := h.issueTokens(w, user.ID)
	if err != nil {
		h.Logger.Errorw("Login: token error", "user_id", user.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(tokens)
}

// Refresh выдаёт новую пару токенов по refresh‑токену из тела запроса.
func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Refresh string `json:"refresh"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Refresh == "" {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	userID, err := middleware.ParseToken(req.Refresh, h.Config.AuthSecret)
	if err != nil {
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}

	tokens, err := h.issueTokens(w, userID)
	if err != nil {
		h.Logger.Errorw("Refresh: token error", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(tokens)
}

// Status служебная ручка: кто я по текущему токену.
func (h *UserHandler) Status(w http.ResponseWriter, r *http.Request) {
	result := "anonymous"
	if userID, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		result = fmt.Sprintf("User ID = %d", userID)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"result": result})
}
