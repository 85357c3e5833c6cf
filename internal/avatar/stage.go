package avatar

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	// FrameInterval is how long each stage frame displays
	FrameInterval = 80 * time.Millisecond

	DefaultWidth  = 32
	DefaultHeight = 10
)

var (
	aliveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF75B5")).Bold(true)
	deadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7A7A7A"))
)

// Stage is a fixed-size canvas the character bounces around in
type Stage struct {
	Character Character
	Width     int
	Height    int
	PosX      int
	PosY      int
	DX        int
	DY        int
	Frame     int
	Over      bool
	sprite    []string
}

// NewStage places c in the top-left corner of a width × height canvas
func NewStage(c Character, width, height int) Stage {
	s := Stage{
		Character: c,
		Width:     width,
		Height:    height,
		DX:        1,
		DY:        1,
		sprite:    c.Draw(),
	}
	s.clampPositions()
	return s
}

// Step advances the animation by one frame. A finished stage stays still.
func (s *Stage) Step() {
	if s.Over {
		return
	}
	s.Frame++
	s.sprite = s.Character.Animate(s.Frame)

	if next := s.PosX + s.DX; next < 0 || next > s.maxX() {
		s.DX = -s.DX
	}
	if next := s.PosY + s.DY; next < 0 || next > s.maxY() {
		s.DY = -s.DY
	}
	s.PosX += s.DX
	s.PosY += s.DY
	s.clampPositions()
}

// GameOver freezes the character and switches to its game over sprite
func (s *Stage) GameOver() {
	s.Over = true
	s.sprite = s.Character.GameOver()
}

// Title is the caption shown above the stage
func (s Stage) Title() string {
	return "Fantastic form: " + s.Character.Name()
}

// View renders the canvas
func (s Stage) View() string {
	rows := make([]string, s.Height)
	for i, line := range s.sprite {
		y := s.PosY + i
		if y < 0 || y >= s.Height {
			continue
		}
		rows[y] = strings.Repeat(" ", s.PosX) + line
	}
	for y, row := range rows {
		if pad := s.Width - lipgloss.Width(row); pad > 0 {
			rows[y] = row + strings.Repeat(" ", pad)
		}
	}

	style := aliveStyle
	if s.Over {
		style = deadStyle
	}
	return style.Render(strings.Join(rows, "\n"))
}

func (s Stage) spriteWidth() int {
	w := 0
	for _, line := range s.sprite {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

func (s *Stage) clampPositions() {
	if s.PosX < 0 {
		s.PosX = 0
	}
	if s.PosX > s.maxX() {
		s.PosX = s.maxX()
	}
	if s.PosY < 0 {
		s.PosY = 0
	}
	if s.PosY > s.maxY() {
		s.PosY = s.maxY()
	}
}

func (s Stage) maxX() int {
	return max(s.Width-s.spriteWidth(), 0)
}

func (s Stage) maxY() int {
	return max(s.Height-len(s.sprite), 0)
}
