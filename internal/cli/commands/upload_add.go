package commands

import (
	"context"
	"fmt"

	"OutfitLab/internal/cli/bootstrap"
	"OutfitLab/internal/cli/service"
	"OutfitLab/internal/config"
	"OutfitLab/internal/outfit"
)

type uploadAddCmd struct{}

func (uploadAddCmd) Name() string { return "upload-add" }
func (uploadAddCmd) Description() string {
	return "Добавить вещь и подобрать комбинации"
}
func (uploadAddCmd) Usage() string { return "upload-add <type> <color> [gender] [usage]" }

func (uploadAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 || len(args) > 4 {
		return ErrUsage
	}
	up := outfit.UserUpload{Type: args[0], Color: args[1]}
	if len(args) >= 3 {
		up.Gender = args[2]
	}
	if len(args) == 4 {
		up.Usage = args[3]
	}

	cs, done, err := bootstrap.OpenStore()
	if err != nil {
		return err
	}
	defer done()

	res, err := service.Recommend(cfg, cs, up)
	if err != nil {
		return err
	}

	source := "локально"
	if res.FromServer {
		source = "с сервера"
	}
	fmt.Fprintf(Out, "Загрузка %s (%s)\n", res.Upload.ID, source)
	printCombinations(res.Combinations)
	return nil
}

// printCombinations выводит комбинации в общем для команд формате.
func printCombinations(combos []outfit.Combination) {
	for _, c := range combos {
		fmt.Fprintf(Out, "- %s  %s [%s]\n", c.ID, c.Name, c.Style)
		for _, it := range c.Items {
			fmt.Fprintf(Out, "    %s (%s)\n", it.ID, it.Type)
		}
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(combos))
}

func init() { RegisterCmd(uploadAddCmd{}) }
