package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"OutfitLab/internal/cli/api"
	"OutfitLab/internal/cli/auth"
	"OutfitLab/internal/cli/bootstrap"
	"OutfitLab/internal/cli/store"
	"OutfitLab/internal/config"
	"OutfitLab/internal/outfit"
)

type combosCmd struct{}

func (combosCmd) Name() string { return "combos" }
func (combosCmd) Description() string {
	return "Показать комбинации для загрузки"
}
func (combosCmd) Usage() string { return "combos <upload-id>" }

func (combosCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	uploadID := args[0]

	cs, done, err := bootstrap.OpenStore()
	if err != nil {
		return err
	}
	defer done()

	combos, err := fetchCombinations(cfg, cs, uploadID)
	if err != nil {
		return err
	}
	if len(combos) == 0 {
		fmt.Fprintln(Out, "Нет комбинаций")
		return nil
	}
	printCombinations(combos)
	return nil
}

// fetchCombinations возвращает комбинации загрузки: сперва с сервера,
// при его недоступности — локальной генерацией по известной загрузке.
func fetchCombinations(cfg *config.Config, cs *store.CombinationStore, uploadID string) ([]outfit.Combination, error) {
	if cfg != nil && cfg.ServerURL != "" {
		if combos, err := fetchRemoteCombinations(cfg, uploadID); err == nil {
			return combos, nil
		}
	}
	up, ok := cs.UserUpload(uploadID)
	if !ok {
		return nil, fmt.Errorf("неизвестная загрузка: %s", uploadID)
	}
	gen := outfit.NewGenerator(outfit.DefaultCatalog())
	return gen.Generate(up)
}

func fetchRemoteCombinations(cfg *config.Config, uploadID string) ([]outfit.Combination, error) {
	token, _ := auth.LoadToken()
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/uploads/" + uploadID
	resp, body, err := api.GetJSON(endpoint, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var pr struct {
		Outfits []outfit.Combination `json:"outfits"`
	}
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return pr.Outfits, nil
}

func init() { RegisterCmd(combosCmd{}) }
