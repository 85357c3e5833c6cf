package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dramagotchi/internal/avatar"
	"dramagotchi/internal/pet"
)

// DecayInterval is how often the pet's needs are settled while idle
const DecayInterval = 2 * time.Second

// Phase is the screen the game is on
type Phase int

const (
	PhaseNaming Phase = iota
	PhasePlaying
	PhaseGameOver
)

const (
	msgWelcome    = "Welcome! Pick an action to get started."
	msgNeedName   = "Please enter a name."
	msgNewGameFmt = "Welcome back! Take good care of %s this time."
)

// Model represents the game state
type Model struct {
	Pet       *pet.Pet
	Config    *pet.Config
	Now       func() time.Time
	Phase     Phase
	NameInput string
	Choice    int
	Quitting  bool
	Message   string
	Stage     avatar.Stage
	Animation Animation
}

type decayTickMsg time.Time
type frameTickMsg time.Time

// NewModel creates a new game model. An empty name starts on the naming screen.
func NewModel(name string, cfg *pet.Config) Model {
	m := Model{
		Config: cfg,
		Now:    time.Now,
		Phase:  PhaseNaming,
		Stage:  avatar.NewStage(avatar.Random(), avatar.DefaultWidth, avatar.DefaultHeight),
	}
	if name = strings.TrimSpace(name); name != "" {
		m.start(name)
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(decayTick(), frameTick())
}

func decayTick() tea.Cmd {
	return tea.Tick(DecayInterval, func(t time.Time) tea.Msg {
		return decayTickMsg(t)
	})
}

func frameTick() tea.Cmd {
	return tea.Tick(avatar.FrameInterval, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		switch m.Phase {
		case PhaseNaming:
			return m.updateNaming(msg)
		case PhasePlaying:
			return m.updatePlaying(msg)
		case PhaseGameOver:
			return m.updateGameOver(msg)
		}

	case decayTickMsg:
		if m.Phase == PhasePlaying {
			m.Pet.Advance(time.Time(msg))
			if !m.Pet.IsAlive() {
				m.gameOver()
			}
		}
		return m, decayTick()

	case frameTickMsg:
		if m.Phase != PhaseNaming {
			m.Stage.Step()
		}
		if m.Animation.Type != AnimNone {
			m.Animation.Frame = int(time.Time(msg).Sub(m.Animation.StartTime) / AnimationFrameDuration)
			if IsAnimationComplete(m.Animation) {
				m.Animation = Animation{}
			}
		}
		return m, frameTick()
	}

	return m, nil
}

func (m Model) updateNaming(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.Quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		name := strings.TrimSpace(m.NameInput)
		if name == "" {
			m.Message = msgNeedName
			return m, nil
		}
		m.start(name)
	case tea.KeyBackspace:
		if runes := []rune(m.NameInput); len(runes) > 0 {
			m.NameInput = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		m.NameInput += " "
	case tea.KeyRunes:
		m.NameInput += string(msg.Runes)
	}
	return m, nil
}

func (m Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" {
		m.Quitting = true
		return m, tea.Quit
	}

	// While an animation is playing, ignore inputs except quit keys
	if m.Animation.Type != AnimNone {
		return m, nil
	}

	actions := pet.Actions()
	switch msg.String() {
	case "up", "k":
		if m.Choice > 0 {
			m.Choice--
		}
	case "down", "j":
		if m.Choice < len(actions)-1 {
			m.Choice++
		}
	case "enter", " ":
		return m.perform(actions[m.Choice])
	}
	return m, nil
}

func (m Model) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		m.Quitting = true
		return m, tea.Quit
	case "n", "y":
		name := m.Pet.Name
		m.Stage = avatar.NewStage(avatar.Random(), avatar.DefaultWidth, avatar.DefaultHeight)
		m.start(name)
		m.Message = fmt.Sprintf(msgNewGameFmt, name)
	}
	return m, nil
}

func (m Model) perform(a pet.Action) (tea.Model, tea.Cmd) {
	if a == pet.ActionQuit {
		m.Quitting = true
		return m, tea.Quit
	}

	now := m.Now()
	m.Message = m.Pet.Do(a, now)

	if !m.Pet.IsAlive() {
		m.gameOver()
		return m, nil
	}
	if m.Message != pet.MsgTooTired {
		m.startAnimation(AnimationFor(a), now)
	}
	return m, nil
}

func (m *Model) start(name string) {
	m.Pet = pet.New(name, m.Now(), m.Config)
	m.Phase = PhasePlaying
	m.Choice = 0
	m.NameInput = ""
	m.Message = msgWelcome
	m.Animation = Animation{}
}

func (m *Model) gameOver() {
	m.Phase = PhaseGameOver
	m.Animation = Animation{}
	m.Stage.GameOver()
	log.Printf("Game over for %s after %s", m.Pet.Name, m.Pet.Lifetime())
}

func (m *Model) startAnimation(animType AnimationType, now time.Time) {
	if animType == AnimNone {
		return
	}
	m.Animation = Animation{
		Type:      animType,
		Frame:     0,
		StartTime: now,
	}
}
