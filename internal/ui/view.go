package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dramagotchi/internal/pet"
)

var gameStyles = struct {
	title    lipgloss.Style
	status   lipgloss.Style
	menu     lipgloss.Style
	menuBox  lipgloss.Style
	stats    lipgloss.Style
	stage    lipgloss.Style
	gameOver lipgloss.Style
	help     lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(44),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	stage: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF75B5")).
		MarginLeft(2),

	gameOver: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF0000")).
		Width(44),

	help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}

	switch m.Phase {
	case PhaseNaming:
		return m.namingView()
	case PhaseGameOver:
		return m.gameOverView()
	default:
		return m.playingView()
	}
}

func (m Model) namingView() string {
	sections := []string{
		gameStyles.title.Render("🐣 Welcome to your virtual pet!"),
		"",
		gameStyles.status.Render("What should your pet be called?"),
		gameStyles.menuBox.Render("> " + m.NameInput + "█"),
	}
	if m.Message != "" {
		sections = append(sections, "", gameStyles.status.Render(m.Message))
	}
	sections = append(sections, "", gameStyles.help.Render("enter to confirm • esc to quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) playingView() string {
	var actionArea string
	if m.Animation.Type != AnimNone {
		actionArea = m.renderAnimation()
	} else {
		actionArea = m.renderMenu()
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		"",
		m.renderStats(),
		"",
		gameStyles.status.Render(m.Message),
		"",
		actionArea,
		"",
		gameStyles.help.Render("Use arrows to move • enter to select • q to quit"),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, m.renderStage())
}

func (m Model) gameOverView() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitle(),
		"",
		m.renderStats(),
		"",
		gameStyles.gameOver.Render(m.Pet.GameOverText()+" Start a new game!"),
		gameStyles.status.Render(fmt.Sprintf("%s lasted %s.", m.Pet.Name, m.Pet.Lifetime())),
		"",
		gameStyles.help.Render("Press 'n' for a new game, 'q' to quit"),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, m.renderStage())
}

func (m Model) renderTitle() string {
	return gameStyles.title.Render(fmt.Sprintf("This is %s!", m.Pet.Name))
}

func (m Model) renderStats() string {
	return gameStyles.stats.Render(pet.RenderStatus(m.Pet))
}

func (m Model) renderMenu() string {
	var menuItems []string
	for i, action := range pet.Actions() {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, gameStyles.menu.Render(fmt.Sprintf("%s %s", cursor, action.Label())))
	}
	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

func (m Model) renderAnimation() string {
	animStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFD700")).
		Bold(true).
		Padding(0, 2)
	return animStyle.Render(GetAnimationFrame(m.Animation))
}

func (m Model) renderStage() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.title.Render(m.Stage.Title()),
		gameStyles.stage.Render(m.Stage.View()),
	)
}
