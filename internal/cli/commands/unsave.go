package commands

import (
	"context"
	"fmt"

	"OutfitLab/internal/cli/bootstrap"
	"OutfitLab/internal/cli/service"
	"OutfitLab/internal/config"
)

type unsaveCmd struct{}

func (unsaveCmd) Name() string { return "unsave" }
func (unsaveCmd) Description() string {
	return "Убрать комбинацию из сохранённых"
}
func (unsaveCmd) Usage() string { return "unsave <upload-id> <combo-id>" }

func (unsaveCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	uploadID := args[0]
	comboID := args[1]

	cs, done, err := bootstrap.OpenStore()
	if err != nil {
		return err
	}
	defer done()

	if !cs.IsCombinationSaved(comboID, uploadID) {
		fmt.Fprintln(Out, "Не было сохранено:", comboID)
	} else {
		cs.RemoveCombination(comboID, uploadID)
		fmt.Fprintln(Out, "Убрано:", comboID)
	}

	if err := service.PushUnsave(cfg, uploadID, comboID); err != nil {
		fmt.Fprintf(Out, "× Синхронизация с сервером не удалась: %v\n", err)
	}
	return nil
}

func init() { RegisterCmd(unsaveCmd{}) }
