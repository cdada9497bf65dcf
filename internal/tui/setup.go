// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/e2ee-notes/notevault/internal/service"
)

// SetupModel is the one-time encryption setup screen. It picks the
// encryption password, generates the key pair, and uploads the wrapped
// identity. The password cannot be recovered: losing it means losing
// every note.
type SetupModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewSetupModel(ctx context.Context, auth service.ClientAuthService) *SetupModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "encryption password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	confirmInput := textinput.New()
	confirmInput.Placeholder = "repeat encryption password"
	confirmInput.CharLimit = 256
	confirmInput.Width = 40
	confirmInput.EchoMode = textinput.EchoPassword
	confirmInput.EchoCharacter = '*'

	return &SetupModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{passwordInput, confirmInput},
	}
}

func (m *SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(UnlockResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
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
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			password := m.inputs[0].Value()
			confirm := m.inputs[1].Value()
			if strings.TrimSpace(password) == "" {
				m.errMsg = "encryption password is required"
				return m, nil
			}
			if password != confirm {
				m.errMsg = "passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSetup(password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SetupModel) View() string {
	var b strings.Builder
	b.WriteString("Pick an encryption password. It protects your private key\n")
	b.WriteString("and is never sent to the server. It cannot be recovered.\n\n")
	b.WriteString("Encryption password  [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Repeat password      [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\ngenerating keys...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("Encryption setup", b.String(), "tab: next field   enter: submit   esc: sign out")
}

func (m *SetupModel) cmdSetup(password string) tea.Cmd {
	return func() tea.Msg {
		return UnlockResult{Err: m.auth.SetupEncryption(m.ctx, password)}
	}
}

func (m *SetupModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SetupModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
