// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/e2ee-notes/notevault/internal/service"
	"github.com/e2ee-notes/notevault/models"
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	notes      []models.NoteView
	categories []models.CategoryView
	idx        int
	loading    bool
	syncing    bool
	status     string
	errMsg     string

	// filterIdx indexes into categories; -1 shows every note.
	filterIdx int

	detail bool

	form      *noteForm
	catScreen *categoryScreen

	logout bool
}

type notesLoadedMsg struct {
	notes []models.NoteView
	err   error
}

type categoriesLoadedMsg struct {
	categories []models.CategoryView
	err        error
}

type syncDoneMsg struct {
	err error
}

type noteSavedMsg struct {
	err error
}

type noteDeletedMsg struct {
	err error
}

type categorySavedMsg struct {
	err error
}

type categoryDeletedMsg struct {
	err error
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices) mainLoopModel {
	return mainLoopModel{
		ctx:       ctx,
		services:  services,
		loading:   true,
		filterIdx: -1,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadNotes(), m.cmdLoadCategories())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notes = msg.notes
		m.clampIdx()
		return m, nil

	case categoriesLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.categories = msg.categories
		if m.filterIdx >= len(m.categories) {
			m.filterIdx = -1
		}
		if m.catScreen != nil {
			m.catScreen.clampIdx(len(m.categories))
		}
		return m, nil

	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "sync complete"
		m.errMsg = ""
		m.loading = true
		return m, tea.Batch(m.cmdLoadNotes(), m.cmdLoadCategories())

	case noteSavedMsg:
		if m.form != nil {
			m.form.saving = false
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.form = nil
		m.status = "note saved"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadNotes()

	case noteDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "note deleted"
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadNotes()

	case categorySavedMsg:
		if m.catScreen != nil {
			m.catScreen.saving = false
			m.catScreen.form = nil
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "category saved"
		m.errMsg = ""
		return m, m.cmdLoadCategories()

	case categoryDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "category deleted"
		m.errMsg = ""
		m.filterIdx = -1
		return m, tea.Batch(m.cmdLoadCategories(), m.cmdLoadNotes())
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		if m.form != nil {
			return m.updateForm(msg)
		}
		if m.catScreen != nil {
			return m.updateCategoryScreen(msg)
		}
		return m, nil
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	if m.catScreen != nil {
		return m.updateCategoryScreen(msg)
	}
	if m.detail {
		return m.updateDetail(keyMsg)
	}

	return m.updateList(keyMsg)
}

func (m mainLoopModel) updateList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.visibleNotes())-1 {
			m.idx++
		}

	case "enter":
		if _, ok := m.current(); !ok {
			m.status = "no notes"
			return m, nil
		}
		m.detail = true

	case "a":
		m.startNoteForm(nil)
		return m, nil

	case "e":
		note, ok := m.current()
		if !ok {
			m.status = "no notes"
			return m, nil
		}
		m.startNoteForm(&note)
		return m, nil

	case "ctrl+d":
		note, ok := m.current()
		if !ok {
			m.status = "no notes"
			return m, nil
		}
		return m, m.cmdDeleteNote(note.ID)

	case "p":
		note, ok := m.current()
		if !ok {
			return m, nil
		}
		plain := note.NotePlain
		plain.IsPinned = !plain.IsPinned
		return m, m.cmdUpdateNote(note.ID, plain)

	case "f":
		m.cycleFilter()
		m.clampIdx()

	case "g":
		m.catScreen = &categoryScreen{}
		return m, nil

	case "s":
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = "syncing..."
		m.errMsg = ""
		return m, m.cmdSync()

	case "l":
		m.services.AuthService.Logout()
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	note, ok := m.current()
	if !ok {
		m.detail = false
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		m.detail = false

	case "c":
		if err := clipboard.WriteAll(note.Content); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.status = "content copied"

	case "e":
		m.detail = false
		m.startNoteForm(&note)
		return m, nil

	case "ctrl+d":
		m.detail = false
		return m, m.cmdDeleteNote(note.ID)
	}

	return m, nil
}

// visibleNotes applies the category filter. The service returns notes
// pinned-first; filtering keeps that order.
func (m mainLoopModel) visibleNotes() []models.NoteView {
	if m.filterIdx < 0 || m.filterIdx >= len(m.categories) {
		return m.notes
	}

	categoryID := m.categories[m.filterIdx].ID
	filtered := make([]models.NoteView, 0, len(m.notes))
	for _, note := range m.notes {
		if note.CategoryID != nil && *note.CategoryID == categoryID {
			filtered = append(filtered, note)
		}
	}
	return filtered
}

func (m mainLoopModel) current() (models.NoteView, bool) {
	visible := m.visibleNotes()
	if m.idx < 0 || m.idx >= len(visible) {
		return models.NoteView{}, false
	}
	return visible[m.idx], true
}

func (m *mainLoopModel) clampIdx() {
	if max := len(m.visibleNotes()) - 1; m.idx > max {
		m.idx = max
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *mainLoopModel) cycleFilter() {
	if len(m.categories) == 0 {
		m.filterIdx = -1
		return
	}
	m.filterIdx++
	if m.filterIdx >= len(m.categories) {
		m.filterIdx = -1
	}
}

func (m mainLoopModel) categoryName(categoryID *string) string {
	if categoryID == nil || *categoryID == "" {
		return "-"
	}
	for _, category := range m.categories {
		if category.ID == *categoryID {
			return category.Name
		}
	}
	return "?"
}

// ── commands ────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadNotes() tea.Cmd {
	return func() tea.Msg {
		notes, err := m.services.NoteService.GetAll(m.ctx)
		return notesLoadedMsg{notes: notes, err: err}
	}
}

func (m mainLoopModel) cmdLoadCategories() tea.Cmd {
	return func() tea.Msg {
		categories, err := m.services.CategoryService.GetAll(m.ctx)
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

func (m mainLoopModel) cmdSync() tea.Cmd {
	return func() tea.Msg {
		return syncDoneMsg{err: m.services.SyncService.FullSync(m.ctx)}
	}
}

func (m mainLoopModel) cmdCreateNote(plain models.NotePlain) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.NoteService.Create(m.ctx, plain)
		return noteSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdUpdateNote(noteID string, plain models.NotePlain) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.NoteService.Update(m.ctx, noteID, plain)
		return noteSavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteNote(noteID string) tea.Cmd {
	return func() tea.Msg {
		return noteDeletedMsg{err: m.services.NoteService.Delete(m.ctx, noteID)}
	}
}

// ── view ────────────────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	if m.form != nil {
		return m.viewForm()
	}
	if m.catScreen != nil {
		return m.viewCategoryScreen()
	}
	if m.detail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	if m.loading {
		b.WriteString("loading...\n")
	}

	visible := m.visibleNotes()
	for i, note := range visible {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}

		pin := " "
		if note.IsPinned {
			pin = "*"
		}

		b.WriteString(fmt.Sprintf("%s%s %-32s %-14s %s\n",
			cursor, pin,
			fitText(note.Title, 32),
			fitText(m.categoryName(note.CategoryID), 14),
			note.UpdatedAt.Format("2006-01-02 15:04"),
		))
	}
	if len(visible) == 0 && !m.loading {
		b.WriteString("no notes yet, press 'a' to add one\n")
	}

	b.WriteString(m.statusLine())

	title := "Notes"
	if m.filterIdx >= 0 && m.filterIdx < len(m.categories) {
		title = "Notes / " + m.categories[m.filterIdx].Name
	}

	return renderPage(title, b.String(),
		"enter: open   a: add   e: edit   p: pin   f: filter   g: categories   s: sync   ctrl+d: delete   l: logout   q: quit")
}

func (m mainLoopModel) viewDetail() string {
	note, ok := m.current()
	if !ok {
		return renderPage("Note", "", "esc: back")
	}

	var b strings.Builder
	pin := ""
	if note.IsPinned {
		pin = "  (pinned)"
	}
	b.WriteString(titleStyle.Render(note.Title))
	b.WriteString(pin)
	b.WriteString("\n\n")
	b.WriteString(note.Content)
	b.WriteString("\n\n")
	b.WriteString("Category: ")
	b.WriteString(m.categoryName(note.CategoryID))
	b.WriteString("\n")
	b.WriteString("Tags:     ")
	if len(note.Tags) == 0 {
		b.WriteString("-")
	} else {
		b.WriteString(strings.Join(note.Tags, ", "))
	}
	b.WriteString("\n")
	b.WriteString("Updated:  ")
	b.WriteString(note.UpdatedAt.Format("2006-01-02 15:04"))
	b.WriteString("\n")
	b.WriteString(m.statusLine())

	return renderPage("Note", b.String(), "c: copy content   e: edit   ctrl+d: delete   esc: back")
}

func (m mainLoopModel) statusLine() string {
	var b strings.Builder
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	return b.String()
}
