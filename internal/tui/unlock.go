// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/e2ee-notes/notevault/internal/service"
	"github.com/e2ee-notes/notevault/internal/store"
)

// UnlockModel asks for the encryption password and unwraps the private
// key. The encryption password is separate from the login password: the
// server never sees it. Accounts that skipped encryption setup are
// redirected to the setup page.
type UnlockModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	input      textinput.Model
	submitting bool
	errMsg     string
}

func NewUnlockModel(ctx context.Context, auth service.ClientAuthService) *UnlockModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "encryption password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	return &UnlockModel{ctx: ctx, auth: auth, input: passwordInput}
}

func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(UnlockResult); ok {
		m.submitting = false
		if result.Err != nil {
			if errors.Is(result.Err, store.ErrKeysNotSet) {
				return m, func() tea.Msg { return NavigateTo{Page: "setup"} }
			}
			m.errMsg = humanizeError(result.Err)
			m.input.SetValue("")
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			m.auth.Logout()
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "enter":
			if m.submitting {
				return m, nil
			}
			if m.input.Value() == "" {
				m.errMsg = "encryption password is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(m.input.Value())
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *UnlockModel) View() string {
	data := "Encryption password  [" + m.input.View() + "]\n"
	if m.submitting {
		data += "\nunlocking...\n"
	}
	if m.errMsg != "" {
		data += "\n" + errorStyle.Render(m.errMsg) + "\n"
	}

	return renderPage("Unlock", data, "enter: unlock   esc: sign out")
}

func (m *UnlockModel) cmdUnlock(password string) tea.Cmd {
	return func() tea.Msg {
		return UnlockResult{Err: m.auth.Unlock(m.ctx, password)}
	}
}
