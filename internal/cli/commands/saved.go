package commands

import (
	"context"
	"fmt"

	"OutfitLab/internal/cli/bootstrap"
	"OutfitLab/internal/config"
	"OutfitLab/internal/outfit"
)

type savedCmd struct{}

func (savedCmd) Name() string { return "saved" }
func (savedCmd) Description() string {
	return "Показать сохранённые комбинации"
}
func (savedCmd) Usage() string { return "saved [upload-id]" }

func (savedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}

	cs, done, err := bootstrap.OpenStore()
	if err != nil {
		return err
	}
	defer done()

	var list []outfit.SavedCombination
	if len(args) == 1 && args[0] != "all" {
		list = cs.CombinationsForUpload(args[0])
	} else {
		list = cs.SavedCombinations()
	}
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет сохранённых комбинаций")
		return nil
	}
	for _, s := range list {
		fmt.Fprintf(Out, "- %s  %s [%s]  upload=%s  saved=%s\n",
			s.Combo.ID, s.Combo.Name, s.Combo.Style, s.UploadID, s.SavedAt.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(savedCmd{}) }
