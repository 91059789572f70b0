package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/games/crush"
)

// Menu entries on the main screen.
const (
	itemCampaign = iota
	itemEndless
	itemSelectLevel
	itemDifficulty
	itemScores
	itemCount
)

var difficultyPresets = []string{"normal", "easy", "hard", "fixed"}

// MenuSelection is what the user picked on the main menu.
type MenuSelection struct {
	GameID     string
	Level      int // 0 = from the beginning, otherwise 1-based
	Difficulty string
}

// MenuModel is the main menu: mode, start level and difficulty.
type MenuModel struct {
	cursor        int
	levelCursor   int
	inLevelSelect bool
	difficulty    int
	levels        []crush.Level
	width         int
	height        int
	keyMapper     *KeyMapper
	selected      *MenuSelection
	scoreboard    bool
	quitting      bool
}

// NewMenuModel creates the main menu. difficulty preselects a preset.
func NewMenuModel(width, height int, difficulty string) MenuModel {
	m := MenuModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range difficultyPresets {
		if p == difficulty {
			m.difficulty = i
		}
	}
	m.reloadLevels()
	return m
}

func (m *MenuModel) reloadLevels() {
	crush.SetDifficultyPreset(m.Difficulty())
	m.levels = crush.Levels()
	if m.levelCursor >= len(m.levels) {
		m.levelCursor = max(len(m.levels)-1, 0)
	}
}

// Difficulty returns the preset currently shown.
func (m MenuModel) Difficulty() string {
	return difficultyPresets[m.difficulty]
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelKey(action)
		}
		return m.handleMenuKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleMenuKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < itemCount-1 {
			m.cursor++
		}

	case MenuActionLeft, MenuActionRight:
		if m.cursor == itemDifficulty {
			m.cycleDifficulty(action == MenuActionRight)
		}

	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case itemCampaign:
			return m.pick("crush", 0)
		case itemEndless:
			return m.pick("crush_endless", 0)
		case itemSelectLevel:
			if len(m.levels) > 0 {
				m.inLevelSelect = true
			}
		case itemDifficulty:
			m.cycleDifficulty(true)
		case itemScores:
			m.scoreboard = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		return m.pick("crush", m.levelCursor+1)
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

func (m *MenuModel) cycleDifficulty(forward bool) {
	n := len(difficultyPresets)
	if forward {
		m.difficulty = (m.difficulty + 1) % n
	} else {
		m.difficulty = (m.difficulty + n - 1) % n
	}
	m.reloadLevels()
}

func (m MenuModel) pick(gameID string, level int) (tea.Model, tea.Cmd) {
	m.selected = &MenuSelection{
		GameID:     gameID,
		Level:      level,
		Difficulty: m.Difficulty(),
	}
	return m, tea.Quit
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevelSelect()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, "C R U S H", m.width))
	b.WriteString("\n\n")

	items := []string{
		fmt.Sprintf("Campaign (%d levels)", len(m.levels)),
		"Endless Mode",
		"Select Level...",
		fmt.Sprintf("Difficulty: < %s >", m.Difficulty()),
		"High Scores",
	}
	for i, item := range items {
		if i == m.cursor {
			b.WriteString(centerStyled(menuActiveStyle, "> "+item, m.width))
		} else {
			b.WriteString(centerText("  "+item, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(menuHelpStyle, "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) viewLevelSelect() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, "SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		line := fmt.Sprintf("%2d. Target %d in %d moves, %d colors", i+1, lvl.Target, lvl.Moves, lvl.Colors)
		if i == m.levelCursor {
			b.WriteString(centerStyled(menuActiveStyle, "> "+line, m.width))
		} else {
			b.WriteString(centerText("  "+line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerStyled(menuHelpStyle, "Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *MenuSelection {
	return m.selected
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

func centerStyled(style lipgloss.Style, text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return style.Render(text)
	}
	return strings.Repeat(" ", (width-w)/2) + style.Render(text)
}

// MenuResult holds the outcome of running the menu.
type MenuResult struct {
	Selection       *MenuSelection
	Difficulty      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the main menu and returns the selection.
func RunMenu(cfg core.RuntimeConfig, difficulty string) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg.ScreenW, cfg.ScreenH, difficulty),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	cfg.ScreenW, cfg.ScreenH = m.width, m.height
	result := MenuResult{
		Selection:       m.Selected(),
		Difficulty:      m.Difficulty(),
		Config:          cfg,
		WantsScoreboard: m.scoreboard,
	}
	if m.selected == nil && !m.scoreboard {
		result.Quit = true
	}
	return result, nil
}
