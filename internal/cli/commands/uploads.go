package commands

import (
	"context"
	"fmt"

	"OutfitLab/internal/cli/bootstrap"
	"OutfitLab/internal/config"
)

type uploadsCmd struct{}

func (uploadsCmd) Name() string { return "uploads" }
func (uploadsCmd) Description() string {
	return "Показать известные загрузки"
}
func (uploadsCmd) Usage() string { return "uploads" }

func (uploadsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	cs, done, err := bootstrap.OpenStore()
	if err != nil {
		return err
	}
	defer done()

	list := cs.UserUploads()
	if len(list) == 0 {
		fmt.Fprintln(Out, "Нет загрузок")
		return nil
	}
	for _, u := range list {
		saved := len(cs.CombinationsForUpload(u.ID))
		fmt.Fprintf(Out, "- %s  type=%s color=%s  saved=%d\n", u.ID, u.Type, u.Color, saved)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(list))
	return nil
}

func init() { RegisterCmd(uploadsCmd{}) }
