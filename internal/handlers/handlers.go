package handlers

import (
	"OutfitLab/internal/config"
	"OutfitLab/internal/middleware"
	"OutfitLab/internal/repo"
	"OutfitLab/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	recService *service.RecommendationService,
	outfitService *service.OutfitService,
	catalogRepo repo.CatalogRepository,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	itemsHandler := NewItemsHandler(catalogRepo, logger)
	outfitsHandler := NewOutfitsHandler(recService, outfitService, logger)

	// Auth routes
	r.Post("/api/auth/register", userHandler.Register)
	r.Post("/api/auth/login", userHandler.Login)
	r.Post("/api/auth/refresh", userHandler.Refresh)
	r.Post("/api/auth/test", userHandler.Status)

	// Catalog routes
	r.Get("/api/items", itemsHandler.List)
	r.Get("/api/items/{id}", itemsHandler.Get)

	// Outfit routes
	r.Post("/api/outfits/provide", outfitsHandler.Provide)
	r.Get("/api/outfits/saved/{uploadID}", outfitsHandler.Saved)
	r.Post("/api/outfits/save", outfitsHandler.Save)
	r.Post("/api/outfits/unsave", outfitsHandler.Unsave)
	r.Get("/api/uploads", outfitsHandler.Uploads)
	r.Get("/api/uploads/{uploadID}", outfitsHandler.UploadCombinations)

	return &Handler{Router: r}
}
