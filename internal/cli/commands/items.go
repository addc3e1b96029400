package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"OutfitLab/internal/cli/api"
	"OutfitLab/internal/cli/auth"
	"OutfitLab/internal/config"
	"OutfitLab/internal/model"
)

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать каталог одежды"
}
func (itemsCmd) Usage() string { return "items [limit]" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	endpoint := strings.TrimRight(cfg.ServerURL, "/") + "/api/items"
	if len(args) == 1 {
		endpoint += "?limit=" + args[0]
	}
	token, _ := auth.LoadToken()
	resp, body, err := api.GetJSON(endpoint, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		fmt.Fprintln(Out, "Каталог пуст")
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	var dr struct {
		Items   []model.CatalogItem `json:"items"`
		Message string              `json:"message"`
	}
	if err := json.Unmarshal(body, &dr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	for _, it := range dr.Items {
		fmt.Fprintf(Out, "- %s  %s  color=%s  styles=%s\n", it.ClothID, it.Type, it.Color, it.Styles)
	}
	fmt.Fprintln(Out, dr.Message)
	return nil
}

func init() { RegisterCmd(itemsCmd{}) }
