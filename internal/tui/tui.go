// Package tui renders the todo list in the terminal. All collection and
// form state lives in the view model; this package only maps key presses
// to transitions and API calls to Bubble Tea commands.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshgeng1116/TodoApp/internal/client"
	"github.com/joshgeng1116/TodoApp/internal/viewmodel"
)

// API is the slice of the REST client the UI needs.
type API interface {
	List(ctx context.Context) ([]client.Todo, error)
	Create(ctx context.Context, req client.CreateRequest) (client.Todo, error)
	Patch(ctx context.Context, id string, req client.PatchRequest) (client.Todo, error)
	Delete(ctx context.Context, id string) error
}

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

type (
	todosLoadedMsg struct {
		todos []client.Todo
		err   error
	}
	todoCreatedMsg struct {
		todo client.Todo
		err  error
	}
	todoToggledMsg struct {
		id   string
		prev bool
		todo client.Todo
		err  error
	}
	todoSavedMsg struct {
		id   string
		todo client.Todo
		err  error
	}
	todoRemovedMsg struct {
		backup []client.Todo
		err    error
	}
)

type Model struct {
	api API
	vm  *viewmodel.Model

	mode    mode
	cursor  int
	formErr string

	titleInput textinput.Model
	descInput  textinput.Model

	width  int
	height int
}

func NewModel(api API) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Title..."
	ti.CharLimit = 200

	di := textinput.New()
	di.Prompt = "> "
	di.Placeholder = "Description (optional)..."
	di.CharLimit = 500

	return Model{
		api:        api,
		vm:         viewmodel.New(),
		titleInput: ti,
		descInput:  di,
	}
}

func (m Model) Init() tea.Cmd {
	m.vm.BeginRefresh()
	return m.refreshCmd()
}

func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		todos, err := m.api.List(context.Background())
		return todosLoadedMsg{todos: todos, err: err}
	}
}

func (m Model) createCmd(req client.CreateRequest) tea.Cmd {
	return func() tea.Msg {
		todo, err := m.api.Create(context.Background(), req)
		return todoCreatedMsg{todo: todo, err: err}
	}
}

func (m Model) toggleCmd(id string, req client.PatchRequest, prev bool) tea.Cmd {
	return func() tea.Msg {
		todo, err := m.api.Patch(context.Background(), id, req)
		return todoToggledMsg{id: id, prev: prev, todo: todo, err: err}
	}
}

func (m Model) saveEditCmd(id string, req client.PatchRequest) tea.Cmd {
	return func() tea.Msg {
		todo, err := m.api.Patch(context.Background(), id, req)
		return todoSavedMsg{id: id, todo: todo, err: err}
	}
}

func (m Model) removeCmd(id string, backup []client.Todo) tea.Cmd {
	return func() tea.Msg {
		err := m.api.Delete(context.Background(), id)
		return todoRemovedMsg{backup: backup, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case todosLoadedMsg:
		m.vm.CompleteRefresh(msg.todos, msg.err)
		m.clampCursor()
		return m, nil

	case todoCreatedMsg:
		m.vm.CompleteAdd(msg.todo, msg.err)
		if msg.err == nil {
			m.mode = modeList
			m.titleInput.SetValue("")
			m.descInput.SetValue("")
			m.blurForm()
		}
		return m, nil

	case todoToggledMsg:
		m.vm.CompleteToggle(msg.id, msg.todo, msg.prev, msg.err)
		return m, nil

	case todoSavedMsg:
		m.vm.CompleteSaveEdit(msg.id, msg.todo, msg.err)
		if msg.err == nil {
			m.mode = modeList
			m.titleInput.SetValue("")
			m.descInput.SetValue("")
			m.blurForm()
		}
		return m, nil

	case todoRemovedMsg:
		m.vm.CompleteRemove(msg.backup, msg.err)
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateForm(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.vm.FilteredTodos())-1 {
			m.cursor++
		}
		return m, nil

	case "r":
		m.vm.BeginRefresh()
		return m, m.refreshCmd()

	case "f":
		m.vm.SetFilter(nextFilter(m.vm.Filter))
		m.clampCursor()
		return m, nil

	case " ", "enter":
		todo, ok := m.selected()
		if !ok {
			return m, nil
		}
		req, prev, ok := m.vm.BeginToggle(todo.ID)
		if !ok {
			return m, nil
		}
		return m, m.toggleCmd(todo.ID, req, prev)

	case "d", "x":
		todo, ok := m.selected()
		if !ok {
			return m, nil
		}
		backup, ok := m.vm.BeginRemove(todo.ID)
		if !ok {
			return m, nil
		}
		m.clampCursor()
		return m, m.removeCmd(todo.ID, backup)

	case "a":
		m.mode = modeAdd
		m.formErr = ""
		m.titleInput.SetValue(m.vm.NewTitle)
		m.descInput.SetValue(m.vm.NewDescription)
		m.focusTitle()
		return m, nil

	case "e":
		todo, ok := m.selected()
		if !ok || !m.vm.StartEdit(todo.ID) {
			return m, nil
		}
		m.mode = modeEdit
		m.formErr = ""
		m.titleInput.SetValue(m.vm.EditTitle)
		m.titleInput.CursorEnd()
		m.descInput.SetValue(m.vm.EditDescription)
		m.descInput.CursorEnd()
		m.focusTitle()
		return m, nil
	}

	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.mode == modeEdit {
			m.vm.CancelEdit()
		}
		m.mode = modeList
		m.formErr = ""
		m.blurForm()
		return m, nil

	case "tab", "shift+tab":
		if m.titleInput.Focused() {
			m.titleInput.Blur()
			m.descInput.Focus()
		} else {
			m.descInput.Blur()
			m.titleInput.Focus()
		}
		return m, nil

	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	if m.titleInput.Focused() {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	if m.mode == modeAdd {
		m.vm.NewTitle = m.titleInput.Value()
		m.vm.NewDescription = m.descInput.Value()
		req, ok := m.vm.BeginAdd()
		if !ok {
			m.formErr = "Title cannot be empty"
			return m, nil
		}
		m.formErr = ""
		return m, m.createCmd(req)
	}

	m.vm.EditTitle = m.titleInput.Value()
	m.vm.EditDescription = m.descInput.Value()
	id, req, ok := m.vm.BeginSaveEdit()
	if !ok {
		m.formErr = "Title cannot be empty"
		return m, nil
	}
	m.formErr = ""
	return m, m.saveEditCmd(id, req)
}

func (m Model) View() string {
	var b strings.Builder

	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), m.vm.CompletedCount(),
		pendingStyle.Render("•"), m.vm.ActiveCount(),
		accentStyle.Render("Total"), m.vm.TotalCount(),
	)
	if m.vm.Loading {
		header += mutedStyle.Render("  loading...")
	}
	if m.vm.Saving {
		header += mutedStyle.Render("  saving...")
	}
	b.WriteString(header + "\n")
	b.WriteString(m.filterLine() + "\n\n")

	todos := m.vm.FilteredTodos()
	if len(todos) == 0 {
		b.WriteString(mutedStyle.Render("  nothing here") + "\n")
	}
	for i, todo := range todos {
		b.WriteString(m.renderTodo(i, todo) + "\n")
	}

	if m.vm.Error != "" {
		b.WriteString("\n" + errorStyle.Render("✖ "+m.vm.Error) + "\n")
	}

	if m.mode == modeAdd || m.mode == modeEdit {
		b.WriteString("\n" + m.renderForm() + "\n")
	} else {
		b.WriteString("\n" + helpStyle.Render(
			"space toggle • a add • e edit • d delete • f filter • r refresh • q quit",
		) + "\n")
	}

	return b.String()
}

func (m Model) renderTodo(index int, todo client.Todo) string {
	box := mutedStyle.Render(boxUnchecked)
	text := todo.Title
	if todo.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}
	if todo.Description != "" {
		text += mutedStyle.Render(" — " + todo.Description)
	}

	prefix := "  "
	if index == m.cursor {
		prefix = selectedStyle.Render("> ")
	}
	return prefix + box + " " + text
}

func (m Model) filterLine() string {
	parts := make([]string, 0, 3)
	for _, f := range []viewmodel.Filter{
		viewmodel.FilterAll,
		viewmodel.FilterActive,
		viewmodel.FilterCompleted,
	} {
		label := string(f)
		if f == m.vm.Filter {
			label = accentStyle.Render("[" + label + "]")
		} else {
			label = mutedStyle.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderForm() string {
	title := "Add todo"
	if m.mode == modeEdit {
		title = "Edit todo"
	}
	if m.formErr != "" {
		title += " — " + errorStyle.Render(m.formErr)
	}
	lines := []string{
		title,
		m.titleInput.View(),
		m.descInput.View(),
		helpStyle.Render("enter save • tab switch field • esc cancel"),
	}
	return formStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) selected() (client.Todo, bool) {
	todos := m.vm.FilteredTodos()
	if m.cursor < 0 || m.cursor >= len(todos) {
		return client.Todo{}, false
	}
	return todos[m.cursor], true
}

func (m *Model) clampCursor() {
	if max := len(m.vm.FilteredTodos()) - 1; m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) focusTitle() {
	m.descInput.Blur()
	m.titleInput.Focus()
}

func (m *Model) blurForm() {
	m.titleInput.Blur()
	m.descInput.Blur()
}

func nextFilter(f viewmodel.Filter) viewmodel.Filter {
	switch f {
	case viewmodel.FilterAll:
		return viewmodel.FilterActive
	case viewmodel.FilterActive:
		return viewmodel.FilterCompleted
	default:
		return viewmodel.FilterAll
	}
}
