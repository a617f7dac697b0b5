package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridmatch/internal/config"
	"github.com/vovakirdan/gridmatch/internal/core"
)

// Setup holds the difficulty and board size picked before a game.
// Zero Columns and Rows keep the configured size.
type Setup struct {
	Difficulty config.DifficultyPreset
	Columns    int
	Rows       int
	Random     bool
}

type sizeOption struct {
	label   string
	columns int
	rows    int
	random  bool
}

var setupDifficulties = []config.DifficultyPreset{
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
}

var setupSizes = []sizeOption{
	{label: "Default"},
	{label: "Small (6x6)", columns: 6, rows: 6},
	{label: "Medium (8x8)", columns: 8, rows: 8},
	{label: "Large (10x10)", columns: 10, rows: 10},
	{label: "Huge (12x12)", columns: 12, rows: 12},
	{label: "Random", random: true},
}

// SetupModel lets users choose difficulty and then board size.
type SetupModel struct {
	cursor       int
	sizeCursor   int
	inSizeSelect bool
	width        int
	height       int
	keyMapper    *KeyMapper
	selection    Setup
	choosing     bool
	quitting     bool
	back         bool
}

// NewSetupModel creates a new setup model. The cursor starts on normal.
func NewSetupModel(width, height int) SetupModel {
	return SetupModel{
		cursor:    1,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inSizeSelect {
			return m.handleSizeKey(action)
		}
		return m.handleDifficultyKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m SetupModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(setupDifficulties)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selection.Difficulty = setupDifficulties[m.cursor]
		m.inSizeSelect = true
		m.sizeCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SetupModel) handleSizeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.sizeCursor > 0 {
			m.sizeCursor--
		}
	case MenuActionDown:
		if m.sizeCursor < len(setupSizes)-1 {
			m.sizeCursor++
		}
	case MenuActionSelect:
		opt := setupSizes[m.sizeCursor]
		m.selection.Columns = opt.columns
		m.selection.Rows = opt.rows
		m.selection.Random = opt.random
		m.choosing = false
		return m, tea.Quit
	case MenuActionBack:
		m.inSizeSelect = false
	}
	return m, nil
}

// View renders the current step.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	if m.inSizeSelect {
		b.WriteString(centerText("BOARD SIZE", m.width))
		b.WriteString("\n\n")
		for i, opt := range setupSizes {
			b.WriteString(centerText(menuLine(i == m.sizeCursor, opt.label), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText("DIFFICULTY", m.width))
		b.WriteString("\n\n")
		for i, d := range setupDifficulties {
			b.WriteString(centerText(menuLine(i == m.cursor, string(d)), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return b.String()
}

func menuLine(selected bool, label string) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}
	return fmt.Sprintf("%s%s", cursor, label)
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *Setup {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back on the first step.
func (m SetupModel) WantsBack() bool {
	return m.back
}

// RunSetup runs the setup screens. A nil selection means the user backed
// out or quit.
func RunSetup(cfg core.RuntimeConfig) (*Setup, error) {
	p := tea.NewProgram(NewSetupModel(cfg.ScreenW, cfg.ScreenH), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}
	return m.Selected(), nil
}
