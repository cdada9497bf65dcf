// Package tui implements the terminal user interface of the notevault
// client on top of Bubble Tea.
//
// The interface runs in two phases. AuthFlow walks the user through
// sign-in (or registration) and the encryption password, leaving the
// shared session authenticated and unlocked. MainLoop is the working
// screen: the note list with detail, edit, and category views.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/e2ee-notes/notevault/internal/logger"
	"github.com/e2ee-notes/notevault/internal/service"
)

// ErrUserQuit reports that the user left the program instead of
// completing the flow.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: logger}, nil
}

// AuthFlow runs the sign-in program: menu, login or registration, then
// the encryption password screen (setup for fresh accounts, unlock for
// existing ones). On return the session is authenticated and unlocked.
func (t *TUI) AuthFlow(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
		"unlock":   NewUnlockModel(ctx, t.services.AuthService),
		"setup":    NewSetupModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// MainLoop runs the working screen until the user quits or logs out.
// The returned flag is true when the user chose logout, in which case
// the caller restarts with a fresh AuthFlow.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
