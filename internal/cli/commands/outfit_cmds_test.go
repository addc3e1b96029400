package commands

import (
	"context"
	"strings"
	"testing"

	fsrepo "OutfitLab/internal/cli/repo/fs"
	"OutfitLab/internal/config"
)

// локальный сценарий: upload-add → save → saved → unsave → clear,
// сервер не настроен, всё работает через локальное хранилище.
func TestOutfitCommands_LocalFlow(t *testing.T) {
	withTempConfig(t)
	if err := (fsrepo.AuthFSStore{}).SaveLogin("alice"); err != nil {
		t.Fatalf("save login: %v", err)
	}
	cfg := &config.Config{} // без сервера

	// upload-add
	out := withStdoutCapture(t, func() {
		if err := (uploadAddCmd{}).Run(context.Background(), cfg, []string{"SHIRT", "Navy Blue"}); err != nil {
			t.Fatalf("upload-add: %v", err)
		}
	})
	if !strings.Contains(out, "локально") {
		t.Fatalf("expected local source, got: %s", out)
	}
	if !strings.Contains(out, "Всего: 3") {
		t.Fatalf("expected 3 combos, got: %s", out)
	}
	// вытащим id загрузки из вывода: "Загрузка <id> (локально)"
	line := strings.SplitN(out, "\n", 2)[0]
	fields := strings.Fields(line)
	if len(fields) < 2 {
		t.Fatalf("bad upload line: %s", line)
	}
	uploadID := fields[1]

	// save по номеру
	out = withStdoutCapture(t, func() {
		if err := (saveCmd{}).Run(context.Background(), cfg, []string{uploadID, "1"}); err != nil {
			t.Fatalf("save: %v", err)
		}
	})
	if !strings.Contains(out, "Сохранено: "+uploadID+"-combo-1") {
		t.Fatalf("save output: %s", out)
	}

	// повторный save — идемпотентен
	out = withStdoutCapture(t, func() {
		if err := (saveCmd{}).Run(context.Background(), cfg, []string{uploadID, uploadID + "-combo-1"}); err != nil {
			t.Fatalf("save twice: %v", err)
		}
	})
	if !strings.Contains(out, "Уже сохранено") {
		t.Fatalf("expected idempotent save, got: %s", out)
	}

	// saved видит запись
	out = withStdoutCapture(t, func() {
		if err := (savedCmd{}).Run(context.Background(), cfg, []string{uploadID}); err != nil {
			t.Fatalf("saved: %v", err)
		}
	})
	if !strings.Contains(out, uploadID+"-combo-1") {
		t.Fatalf("saved output: %s", out)
	}

	// uploads видит загрузку
	out = withStdoutCapture(t, func() {
		if err := (uploadsCmd{}).Run(context.Background(), cfg, []string{}); err != nil {
			t.Fatalf("uploads: %v", err)
		}
	})
	if !strings.Contains(out, uploadID) || !strings.Contains(out, "saved=1") {
		t.Fatalf("uploads output: %s", out)
	}

	// unsave
	out = withStdoutCapture(t, func() {
		if err := (unsaveCmd{}).Run(context.Background(), cfg, []string{uploadID, uploadID + "-combo-1"}); err != nil {
			t.Fatalf("unsave: %v", err)
		}
	})
	if !strings.Contains(out, "Убрано: "+uploadID+"-combo-1") {
		t.Fatalf("unsave output: %s", out)
	}

	// unsave отсутствующей — no-op
	out = withStdoutCapture(t, func() {
		if err := (unsaveCmd{}).Run(context.Background(), cfg, []string{uploadID, "nope"}); err != nil {
			t.Fatalf("unsave absent: %v", err)
		}
	})
	if !strings.Contains(out, "Не было сохранено") {
		t.Fatalf("expected no-op message, got: %s", out)
	}

	// save двух и clear
	_ = withStdoutCapture(t, func() {
		_ = (saveCmd{}).Run(context.Background(), cfg, []string{uploadID, "1"})
		_ = (saveCmd{}).Run(context.Background(), cfg, []string{uploadID, "2"})
	})
	out = withStdoutCapture(t, func() {
		if err := (clearCmd{}).Run(context.Background(), cfg, []string{uploadID}); err != nil {
			t.Fatalf("clear: %v", err)
		}
	})
	if !strings.Contains(out, "Убрано: 2") {
		t.Fatalf("clear output: %s", out)
	}

	out = withStdoutCapture(t, func() {
		if err := (savedCmd{}).Run(context.Background(), cfg, []string{}); err != nil {
			t.Fatalf("saved after clear: %v", err)
		}
	})
	if !strings.Contains(out, "Нет сохранённых комбинаций") {
		t.Fatalf("expected empty saved, got: %s", out)
	}
}

func TestOutfitCommands_Usage(t *testing.T) {
	withTempConfig(t)
	cfg := &config.Config{}

	if err := (uploadAddCmd{}).Run(context.Background(), cfg, []string{"SHIRT"}); err != ErrUsage {
		t.Fatalf("upload-add expected ErrUsage, got %v", err)
	}
	if err := (combosCmd{}).Run(context.Background(), cfg, []string{}); err != ErrUsage {
		t.Fatalf("combos expected ErrUsage, got %v", err)
	}
	if err := (saveCmd{}).Run(context.Background(), cfg, []string{"only"}); err != ErrUsage {
		t.Fatalf("save expected ErrUsage, got %v", err)
	}
	if err := (unsaveCmd{}).Run(context.Background(), cfg, []string{}); err != ErrUsage {
		t.Fatalf("unsave expected ErrUsage, got %v", err)
	}
	if err := (clearCmd{}).Run(context.Background(), cfg, []string{}); err != ErrUsage {
		t.Fatalf("clear expected ErrUsage, got %v", err)
	}
}

func TestCombos_UnknownUpload(t *testing.T) {
	withTempConfig(t)
	if err := (fsrepo.AuthFSStore{}).SaveLogin("bob"); err != nil {
		t.Fatalf("save login: %v", err)
	}
	if err := (combosCmd{}).Run(context.Background(), &config.Config{}, []string{"missing"}); err == nil {
		t.Fatalf("expected error for unknown upload")
	}
}

func TestOutfitCommands_NoActiveUser(t *testing.T) {
	withTempConfig(t)
	if err := (uploadAddCmd{}).Run(context.Background(), &config.Config{}, []string{"SHIRT", "Red"}); err == nil {
		t.Fatalf("expected error without active user")
	}
}
