package commands

import (
	"context"
	"fmt"

	"OutfitLab/internal/cli/bootstrap"
	"OutfitLab/internal/cli/service"
	"OutfitLab/internal/config"
)

type clearCmd struct{}

func (clearCmd) Name() string { return "clear" }
func (clearCmd) Description() string {
	return "Убрать все сохранённые комбинации загрузки"
}
func (clearCmd) Usage() string { return "clear <upload-id>" }

func (clearCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	uploadID := args[0]

	cs, done, err := bootstrap.OpenStore()
	if err != nil {
		return err
	}
	defer done()

	removed := cs.CombinationsForUpload(uploadID)
	cs.ClearCombinationsForUpload(uploadID)
	fmt.Fprintf(Out, "Убрано: %d\n", len(removed))

	for _, s := range removed {
		if err := service.PushUnsave(cfg, uploadID, s.Combo.ID); err != nil {
			fmt.Fprintf(Out, "× Синхронизация %s не удалась: %v\n", s.Combo.ID, err)
		}
	}
	return nil
}

func init() { RegisterCmd(clearCmd{}) }
