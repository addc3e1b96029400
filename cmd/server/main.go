package main

import (
	"OutfitLab/internal/config"
	"OutfitLab/internal/handlers"
	"OutfitLab/internal/middleware"
	"OutfitLab/internal/repo"
	"OutfitLab/internal/service"
	"context"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	//context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	catalogRepo := repo.NewCatalogRepository(gormDB)
	outfitRepo := repo.NewOutfitRepository(gormDB)

	// наполняем каталог встроенным сидом, существующие записи не трогаем
	if err := catalogRepo.Seed(ctx, repo.CatalogSeed()); err != nil {
		sugar.Fatalw("failed to seed catalog", "error", err)
	}

	userService := service.NewUserService(userRepo)
	recService := service.NewRecommendationService(catalogRepo, outfitRepo, sugar)
	outfitService := service.NewOutfitService(outfitRepo)

	h := handlers.NewHandler(userService, recService, outfitService, catalogRepo, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
