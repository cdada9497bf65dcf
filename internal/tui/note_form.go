// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/e2ee-notes/notevault/models"
)

// Form field order: title, tags, category, pinned, content.
const (
	formFieldTitle = iota
	formFieldTags
	formFieldCategory
	formFieldPinned
	formFieldContent
	formFieldCount
)

// noteForm is the add/edit screen for a single note. A nil noteID means
// the form creates a new note; otherwise it updates an existing one.
type noteForm struct {
	noteID string

	title   textinput.Model
	tags    textinput.Model
	content textarea.Model

	// categoryIdx indexes into mainLoopModel.categories; -1 means none.
	categoryIdx int
	pinned      bool

	focus  int
	saving bool
	errMsg string
}

func (m *mainLoopModel) startNoteForm(note *models.NoteView) {
	titleInput := textinput.New()
	titleInput.Placeholder = "title"
	titleInput.CharLimit = 256
	titleInput.Width = 48
	titleInput.Focus()

	tagsInput := textinput.New()
	tagsInput.Placeholder = "tags, comma separated"
	tagsInput.Width = 48

	contentArea := textarea.New()
	contentArea.Placeholder = "note text"
	contentArea.SetWidth(54)
	contentArea.SetHeight(8)

	form := &noteForm{
		title:       titleInput,
		tags:        tagsInput,
		content:     contentArea,
		categoryIdx: -1,
	}

	if note != nil {
		form.noteID = note.ID
		form.title.SetValue(note.Title)
		form.tags.SetValue(strings.Join(note.Tags, ", "))
		form.content.SetValue(note.Content)
		form.pinned = note.IsPinned
		if note.CategoryID != nil {
			for i, category := range m.categories {
				if category.ID == *note.CategoryID {
					form.categoryIdx = i
					break
				}
			}
		}
	}

	m.form = form
	m.status = ""
	m.errMsg = ""
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form := m.form

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			m.form = nil
			return m, nil

		case "tab":
			form.setFocus((form.focus + 1) % formFieldCount)
			return m, nil

		case "shift+tab":
			form.setFocus((form.focus - 1 + formFieldCount) % formFieldCount)
			return m, nil

		case "ctrl+s":
			if form.saving {
				return m, nil
			}

			plain, err := form.collect(m.categories)
			if err != "" {
				form.errMsg = err
				return m, nil
			}

			form.errMsg = ""
			form.saving = true
			if form.noteID == "" {
				return m, m.cmdCreateNote(plain)
			}
			return m, m.cmdUpdateNote(form.noteID, plain)
		}

		switch form.focus {
		case formFieldCategory:
			switch keyMsg.String() {
			case "left", "h":
				if form.categoryIdx > -1 {
					form.categoryIdx--
				}
			case "right", "l":
				if form.categoryIdx < len(m.categories)-1 {
					form.categoryIdx++
				}
			}
			return m, nil

		case formFieldPinned:
			if keyMsg.String() == " " || keyMsg.String() == "enter" {
				form.pinned = !form.pinned
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch form.focus {
	case formFieldTitle:
		form.title, cmd = form.title.Update(msg)
	case formFieldTags:
		form.tags, cmd = form.tags.Update(msg)
	case formFieldContent:
		form.content, cmd = form.content.Update(msg)
	}
	return m, cmd
}

func (f *noteForm) setFocus(focus int) {
	f.title.Blur()
	f.tags.Blur()
	f.content.Blur()

	f.focus = focus
	switch focus {
	case formFieldTitle:
		f.title.Focus()
	case formFieldTags:
		f.tags.Focus()
	case formFieldContent:
		f.content.Focus()
	}
}

// collect validates the form and builds the plaintext note. The second
// return value is a non-empty message when validation fails.
func (f *noteForm) collect(categories []models.CategoryView) (models.NotePlain, string) {
	title := strings.TrimSpace(f.title.Value())
	if title == "" {
		return models.NotePlain{}, "title is required"
	}

	plain := models.NotePlain{
		Title:    title,
		Content:  f.content.Value(),
		IsPinned: f.pinned,
	}

	for _, tag := range strings.Split(f.tags.Value(), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			plain.Tags = append(plain.Tags, tag)
		}
	}

	if f.categoryIdx >= 0 && f.categoryIdx < len(categories) {
		categoryID := categories[f.categoryIdx].ID
		plain.CategoryID = &categoryID
	}

	return plain, ""
}

func (m mainLoopModel) viewForm() string {
	form := m.form

	categoryLabel := "none"
	if form.categoryIdx >= 0 && form.categoryIdx < len(m.categories) {
		categoryLabel = m.categories[form.categoryIdx].Name
	}

	pinnedLabel := "[ ]"
	if form.pinned {
		pinnedLabel = "[x]"
	}

	marker := func(field int) string {
		if form.focus == field {
			return "> "
		}
		return "  "
	}

	var b strings.Builder
	b.WriteString(marker(formFieldTitle))
	b.WriteString("Title     [")
	b.WriteString(form.title.View())
	b.WriteString("]\n")
	b.WriteString(marker(formFieldTags))
	b.WriteString("Tags      [")
	b.WriteString(form.tags.View())
	b.WriteString("]\n")
	b.WriteString(marker(formFieldCategory))
	b.WriteString("Category  ← ")
	b.WriteString(categoryLabel)
	b.WriteString(" →\n")
	b.WriteString(marker(formFieldPinned))
	b.WriteString("Pinned    ")
	b.WriteString(pinnedLabel)
	b.WriteString("\n")
	b.WriteString(marker(formFieldContent))
	b.WriteString("Content\n")
	b.WriteString(form.content.View())
	b.WriteString("\n")

	if form.saving {
		b.WriteString("\nsaving...\n")
	}
	if form.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(form.errMsg))
		b.WriteString("\n")
	}

	title := "New note"
	if form.noteID != "" {
		title = "Edit note"
	}

	return renderPage(title, b.String(), "tab: next field   ctrl+s: save   esc: cancel")
}
