package service

import (
	"os"

	"OutfitLab/internal/cli/auth"
	fsrepo "OutfitLab/internal/cli/repo/fs"
)

// AuthService описывает юзкейс-уровень аутентификации для CLI.
type AuthService interface {
	// EstablishContext фиксирует логин как текущий контекст пользователя.
	EstablishContext(login string) error

	// Logout очищает локальный контекст аутентификации.
	Logout() error

	// CurrentUser возвращает логин текущего пользователя, если он установлен.
	CurrentUser() (string, error)
}

// FSAuth — реализация AuthService поверх файлового хранилища.
type FSAuth struct {
	store fsrepo.AuthFSStore
}

// NewFSAuth создаёт FS-реализацию AuthService.
func NewFSAuth() *FSAuth {
	return &FSAuth{}
}

// EstablishContext сохраняет логин как активный.
func (a *FSAuth) EstablishContext(login string) error {
	return a.store.SaveLogin(login)
}

// Logout удаляет сохранённый токен. Контекст логина остаётся, чтобы
// локальные команды продолжали работать с базой пользователя.
func (a *FSAuth) Logout() error {
	p, err := auth.AuthTokenPath()
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// CurrentUser возвращает логин активного пользователя.
func (a *FSAuth) CurrentUser() (string, error) {
	return a.store.LoadLogin()
}

var _ AuthService = (*FSAuth)(nil)
