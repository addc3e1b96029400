package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	fsrepo "OutfitLab/internal/cli/repo/fs"
	"OutfitLab/internal/cli/store"
)

// openKV выбирает бэкенд хранения: SQLite по умолчанию, файловый при
// CLIENT_STORE_DRIVER=fs (на системах без рабочего SQLite).
func openKV(login string) (store.KV, func() error, error) {
	if os.Getenv("CLIENT_STORE_DRIVER") == "fs" {
		base := os.Getenv("CLIENT_DB_PATH")
		if base == "" {
			cfgDir, err := os.UserConfigDir()
			if err != nil {
				return nil, nil, err
			}
			base = filepath.Join(cfgDir, "OutfitLab", "users")
		}
		kv, err := store.NewFileKV(filepath.Join(base, login))
		if err != nil {
			return nil, nil, err
		}
		return kv, func() error { return nil }, nil
	}
	kv, _, err := store.OpenForUser(login)
	if err != nil {
		return nil, nil, err
	}
	if err := kv.Migrate(); err != nil {
		_ = kv.Close()
		return nil, nil, fmt.Errorf("migrate user db: %w", err)
	}
	return kv, kv.Close, nil
}

// OpenStore открывает хранилище комбинаций текущего пользователя поверх его
// SQLite-базы, выполняет миграции и загружает сохранённое состояние.
// Возвращает (store, cleanup, error); cleanup необходимо вызвать после
// окончания работы, чтобы дождаться записи и закрыть соединение с БД.
func OpenStore() (*store.CombinationStore, func() error, error) {
	login, err := (fsrepo.AuthFSStore{}).LoadLogin()
	if err != nil {
		return nil, nil, fmt.Errorf("нет активного пользователя: выполните login/register: %w", err)
	}
	kv, closeKV, err := openKV(login)
	if err != nil {
		return nil, nil, fmt.Errorf("open user store: %w", err)
	}
	cs := store.New(kv)
	if err := cs.Load(); err != nil {
		_ = cs.Close()
		_ = closeKV()
		return nil, nil, fmt.Errorf("load store: %w", err)
	}
	cleanup := func() error {
		if err := cs.Close(); err != nil {
			_ = closeKV()
			return err
		}
		return closeKV()
	}
	return cs, cleanup, nil
}

// InitUserDB создаёт базу пользователя и прогоняет миграции. Вызывается
// сразу после успешного login/register, чтобы первая команда не платила
// за инициализацию.
func InitUserDB(login string) error {
	kv, _, err := store.OpenForUser(login)
	if err != nil {
		return err
	}
	defer kv.Close()
	return kv.Migrate()
}
