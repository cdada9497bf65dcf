// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/e2ee-notes/notevault/models"
)

// categoryScreen lists the user's categories with note counts and hosts
// the add/edit form.
type categoryScreen struct {
	idx    int
	form   *categoryForm
	saving bool
}

type categoryForm struct {
	categoryID string

	name        textinput.Model
	description textinput.Model
	color       textinput.Model

	focus  int
	errMsg string
}

func (s *categoryScreen) clampIdx(count int) {
	if s.idx > count-1 {
		s.idx = count - 1
	}
	if s.idx < 0 {
		s.idx = 0
	}
}

func (s *categoryScreen) startForm(category *models.CategoryView) {
	nameInput := textinput.New()
	nameInput.Placeholder = "name"
	nameInput.CharLimit = 128
	nameInput.Width = 40
	nameInput.Focus()

	descriptionInput := textinput.New()
	descriptionInput.Placeholder = "description (optional)"
	descriptionInput.Width = 40

	colorInput := textinput.New()
	colorInput.Placeholder = "#6B73FF"
	colorInput.CharLimit = 7
	colorInput.Width = 40

	form := &categoryForm{
		name:        nameInput,
		description: descriptionInput,
		color:       colorInput,
	}

	if category != nil {
		form.categoryID = category.ID
		form.name.SetValue(category.Name)
		form.description.SetValue(category.Description)
		form.color.SetValue(category.Color)
	}

	s.form = form
}

func (m mainLoopModel) updateCategoryScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	screen := m.catScreen

	if screen.form != nil {
		return m.updateCategoryForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q", "g":
		m.catScreen = nil
		m.clampIdx()

	case "up", "k":
		if screen.idx > 0 {
			screen.idx--
		}
	case "down", "j":
		if screen.idx < len(m.categories)-1 {
			screen.idx++
		}

	case "a":
		screen.startForm(nil)
		m.status = ""
		m.errMsg = ""

	case "e":
		if screen.idx >= len(m.categories) {
			m.status = "no categories"
			return m, nil
		}
		category := m.categories[screen.idx]
		screen.startForm(&category)
		m.status = ""
		m.errMsg = ""

	case "ctrl+d":
		if screen.idx >= len(m.categories) {
			m.status = "no categories"
			return m, nil
		}
		return m, m.cmdDeleteCategory(m.categories[screen.idx].ID)
	}

	return m, nil
}

func (m mainLoopModel) updateCategoryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	screen := m.catScreen
	form := screen.form

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			screen.form = nil
			return m, nil

		case "tab":
			form.setFocus((form.focus + 1) % 3)
			return m, nil

		case "shift+tab":
			form.setFocus((form.focus + 2) % 3)
			return m, nil

		case "enter":
			if screen.saving {
				return m, nil
			}

			name := strings.TrimSpace(form.name.Value())
			if name == "" {
				form.errMsg = "name is required"
				return m, nil
			}

			plain := models.CategoryPlain{
				Name:        name,
				Description: strings.TrimSpace(form.description.Value()),
				Color:       strings.TrimSpace(form.color.Value()),
			}

			form.errMsg = ""
			screen.saving = true
			if form.categoryID == "" {
				return m, m.cmdCreateCategory(plain)
			}
			return m, m.cmdUpdateCategory(form.categoryID, plain)
		}
	}

	var cmd tea.Cmd
	switch form.focus {
	case 0:
		form.name, cmd = form.name.Update(msg)
	case 1:
		form.description, cmd = form.description.Update(msg)
	case 2:
		form.color, cmd = form.color.Update(msg)
	}
	return m, cmd
}

func (f *categoryForm) setFocus(focus int) {
	f.name.Blur()
	f.description.Blur()
	f.color.Blur()

	f.focus = focus
	switch focus {
	case 0:
		f.name.Focus()
	case 1:
		f.description.Focus()
	case 2:
		f.color.Focus()
	}
}

func (m mainLoopModel) cmdCreateCategory(plain models.CategoryPlain) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.CategoryService.Create(m.ctx, plain)
		return categorySavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdUpdateCategory(categoryID string, plain models.CategoryPlain) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.CategoryService.Update(m.ctx, categoryID, plain)
		return categorySavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteCategory(categoryID string) tea.Cmd {
	return func() tea.Msg {
		return categoryDeletedMsg{err: m.services.CategoryService.Delete(m.ctx, categoryID)}
	}
}

func (m mainLoopModel) viewCategoryScreen() string {
	screen := m.catScreen

	if screen.form != nil {
		return m.viewCategoryForm()
	}

	var b strings.Builder
	for i, category := range m.categories {
		cursor := "  "
		if i == screen.idx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-24s %-10s %3d notes\n",
			cursor,
			fitText(category.Name, 24),
			category.Color,
			category.NoteCount,
		))
	}
	if len(m.categories) == 0 {
		b.WriteString("no categories yet, press 'a' to add one\n")
	}

	b.WriteString(m.statusLine())

	return renderPage("Categories", b.String(),
		"a: add   e: edit   ctrl+d: delete   esc: back")
}

func (m mainLoopModel) viewCategoryForm() string {
	form := m.catScreen.form

	var b strings.Builder
	b.WriteString("Name         [")
	b.WriteString(form.name.View())
	b.WriteString("]\n")
	b.WriteString("Description  [")
	b.WriteString(form.description.View())
	b.WriteString("]\n")
	b.WriteString("Color        [")
	b.WriteString(form.color.View())
	b.WriteString("]\n")

	if m.catScreen.saving {
		b.WriteString("\nsaving...\n")
	}
	if form.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(form.errMsg))
		b.WriteString("\n")
	}

	title := "New category"
	if form.categoryID != "" {
		title = "Edit category"
	}

	return renderPage(title, b.String(), "tab: next field   enter: save   esc: cancel")
}
