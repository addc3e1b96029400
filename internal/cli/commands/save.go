package commands

import (
	"context"
	"fmt"
	"strconv"

	"OutfitLab/internal/cli/bootstrap"
	"OutfitLab/internal/cli/service"
	"OutfitLab/internal/config"
	"OutfitLab/internal/outfit"
)

type saveCmd struct{}

func (saveCmd) Name() string { return "save" }
func (saveCmd) Description() string {
	return "Сохранить комбинацию (по id или номеру 1..3)"
}
func (saveCmd) Usage() string { return "save <upload-id> <combo-id|номер>" }

func (saveCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	uploadID := args[0]
	ref := args[1]

	cs, done, err := bootstrap.OpenStore()
	if err != nil {
		return err
	}
	defer done()

	combos, err := fetchCombinations(cfg, cs, uploadID)
	if err != nil {
		return err
	}
	combo, err := pickCombination(combos, uploadID, ref)
	if err != nil {
		return err
	}

	if cs.IsCombinationSaved(combo.ID, uploadID) {
		fmt.Fprintln(Out, "Уже сохранено:", combo.ID)
		return nil
	}
	cs.AddCombination(combo, uploadID)
	fmt.Fprintln(Out, "Сохранено:", combo.ID)

	// зеркалим на сервер; локальное состояние первично
	var up *outfit.UserUpload
	if u, ok := cs.UserUpload(uploadID); ok {
		up = &u
	}
	if err := service.PushSave(cfg, combo, uploadID, up); err != nil {
		fmt.Fprintf(Out, "× Синхронизация с сервером не удалась: %v\n", err)
	}
	return nil
}

// pickCombination находит комбинацию по id либо по порядковому номеру.
func pickCombination(combos []outfit.Combination, uploadID, ref string) (outfit.Combination, error) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(combos) {
			return outfit.Combination{}, fmt.Errorf("номер вне диапазона 1..%d", len(combos))
		}
		return combos[n-1], nil
	}
	for _, c := range combos {
		if c.ID == ref {
			return c, nil
		}
	}
	return outfit.Combination{}, fmt.Errorf("комбинация %s не найдена для загрузки %s", ref, uploadID)
}

func init() { RegisterCmd(saveCmd{}) }
