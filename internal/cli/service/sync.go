package service

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"OutfitLab/internal/cli/api"
	fsrepo "OutfitLab/internal/cli/repo/fs"
	"OutfitLab/internal/config"
	"OutfitLab/internal/outfit"
)

// saveRequest — DTO серверных ручек /api/outfits/save и /api/outfits/unsave.
type saveRequest struct {
	UploadID string              `json:"upload_id"`
	Outfit   *outfit.Combination `json:"outfit,omitempty"`
	OutfitID string              `json:"outfit_id,omitempty"`
	Upload   *outfit.UserUpload  `json:"upload,omitempty"`
}

// PushSave отправляет сохранённую комбинацию на сервер. Ошибка не
// останавливает локальную работу: вызывающий решает, показывать ли её.
func PushSave(cfg *config.Config, combo outfit.Combination, uploadID string, up *outfit.UserUpload) error {
	req := saveRequest{UploadID: uploadID, Outfit: &combo, Upload: up}
	return pushOutfit(cfg, "/api/outfits/save", req)
}

// PushUnsave отправляет удаление сохранённой комбинации на сервер.
func PushUnsave(cfg *config.Config, uploadID, comboID string) error {
	req := saveRequest{UploadID: uploadID, OutfitID: comboID}
	return pushOutfit(cfg, "/api/outfits/unsave", req)
}

func pushOutfit(cfg *config.Config, path string, req saveRequest) error {
	if cfg == nil || cfg.ServerURL == "" {
		return fmt.Errorf("no server configured")
	}
	token, err := (fsrepo.AuthFSStore{}).Load()
	if err != nil {
		return fmt.Errorf("нет токена: выполните login: %w", err)
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + path
	resp, body, err := api.PostJSON(endpoint, req, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	// отметим момент последней успешной синхронизации
	if login, lerr := (fsrepo.AuthFSStore{}).LoadLogin(); lerr == nil {
		_ = fsrepo.SaveLastSyncAt(login, time.Now().UTC().Format(time.RFC3339))
	}
	return nil
}
