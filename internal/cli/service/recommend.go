package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"OutfitLab/internal/cli/api"
	fsrepo "OutfitLab/internal/cli/repo/fs"
	"OutfitLab/internal/cli/store"
	"OutfitLab/internal/config"
	"OutfitLab/internal/outfit"

	"github.com/google/uuid"
)

// provideRequest/provideResponse — DTO серверного API /api/outfits/provide.
type provideRequest struct {
	Type     string `json:"type"`
	Color    string `json:"color"`
	Gender   string `json:"gender,omitempty"`
	Usage    string `json:"usage,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

type provideResponse struct {
	ID      string               `json:"id"`
	Outfits []outfit.Combination `json:"outfits"`
}

// RecommendResult — результат подбора: загрузка и её комбинации.
// FromServer показывает, откуда пришли комбинации: с сервера или из
// локального генератора.
type RecommendResult struct {
	Upload       outfit.UserUpload
	Combinations []outfit.Combination
	FromServer   bool
}

// Recommend регистрирует загрузку в локальном хранилище и возвращает
// комбинации для неё. Сначала спрашивает сервер; если сервер недоступен
// или отвечает ошибкой, генерирует комбинации локально по встроенному
// каталогу. UploadID назначает сервер; при локальном подборе — клиент.
func Recommend(cfg *config.Config, cs *store.CombinationStore, up outfit.UserUpload) (*RecommendResult, error) {
	if up.Type == "" || up.Color == "" {
		return nil, fmt.Errorf("type and color are required")
	}

	if cfg != nil && cfg.ServerURL != "" {
		if res, err := recommendRemote(cfg, up); err == nil {
			res.Upload = cs.AddUserUpload(res.Upload)
			return res, nil
		}
	}

	// локальный подбор
	if up.ID == "" {
		up.ID = uuid.NewString()
	}
	gen := outfit.NewGenerator(outfit.DefaultCatalog())
	combos, err := gen.Generate(up)
	if err != nil {
		return nil, err
	}
	up = cs.AddUserUpload(up)
	return &RecommendResult{Upload: up, Combinations: combos, FromServer: false}, nil
}

func recommendRemote(cfg *config.Config, up outfit.UserUpload) (*RecommendResult, error) {
	token, _ := (fsrepo.AuthFSStore{}).Load()
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/outfits/provide"
	req := provideRequest{Type: up.Type, Color: up.Color, Gender: up.Gender, Usage: up.Usage, ImageURL: up.ImageURL}
	resp, body, err := api.PostJSON(endpoint, req, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var pr provideResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if pr.ID == "" {
		return nil, fmt.Errorf("server returned empty upload id")
	}
	up.ID = pr.ID
	return &RecommendResult{Upload: up, Combinations: pr.Outfits, FromServer: true}, nil
}
