package pet

import (
	"strings"
	"time"
)

// Action is a command an adapter can send to the pet
type Action int

const (
	ActionFeed Action = iota
	ActionPlay
	ActionSleep
	ActionClean
	ActionTalk
	ActionStatus
	ActionHelp
	ActionQuit
)

var actionNames = map[Action]string{
	ActionFeed:   "feed",
	ActionPlay:   "play",
	ActionSleep:  "sleep",
	ActionClean:  "clean",
	ActionTalk:   "talk",
	ActionStatus: "status",
	ActionHelp:   "help",
	ActionQuit:   "quit",
}

// actionTokens maps every accepted input word, English and German, to its action
var actionTokens = map[string]Action{
	"feed":     ActionFeed,
	"füttern":  ActionFeed,
	"futter":   ActionFeed,
	"play":     ActionPlay,
	"spielen":  ActionPlay,
	"sleep":    ActionSleep,
	"schlafen": ActionSleep,
	"clean":    ActionClean,
	"waschen":  ActionClean,
	"talk":     ActionTalk,
	"reden":    ActionTalk,
	"status":   ActionStatus,
	"help":     ActionHelp,
	"hilfe":    ActionHelp,
	"quit":     ActionQuit,
	"ende":     ActionQuit,
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Label returns the capitalised menu label
func (a Action) Label() string {
	name := a.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// Actions returns every action in menu order
func Actions() []Action {
	return []Action{
		ActionFeed,
		ActionPlay,
		ActionSleep,
		ActionClean,
		ActionTalk,
		ActionStatus,
		ActionHelp,
		ActionQuit,
	}
}

// ParseAction looks up a typed command, ignoring case and surrounding space
func ParseAction(token string) (Action, bool) {
	a, ok := actionTokens[strings.ToLower(strings.TrimSpace(token))]
	return a, ok
}

// HelpText lists the available commands
func HelpText() string {
	var names []string
	for _, a := range Actions() {
		names = append(names, a.String())
	}
	return "Available actions: " + strings.Join(names, ", ")
}

// Do performs an action at the given time and returns the pet's response
func (p *Pet) Do(a Action, now time.Time) string {
	switch a {
	case ActionFeed:
		return p.Feed(now)
	case ActionPlay:
		return p.Play(now)
	case ActionSleep:
		return p.Sleep(now)
	case ActionClean:
		return p.Clean(now)
	case ActionTalk:
		return p.Talk(now)
	case ActionStatus:
		return p.Status(now)
	case ActionHelp:
		return HelpText()
	case ActionQuit:
		return MsgFarewell
	}
	return ""
}

// settle applies pending decay and reports whether the pet can still be cared for
func (p *Pet) settle(now time.Time) bool {
	p.Advance(now)
	return p.IsAlive()
}

// Feed raises hunger and a little energy, at the cost of some hygiene
func (p *Pet) Feed(now time.Time) string {
	if !p.settle(now) {
		return p.GameOverText()
	}
	p.Hunger = clamp(p.Hunger + FeedHungerIncrease)
	p.Energy = clamp(p.Energy + FeedEnergyIncrease)
	p.Hygiene = clamp(p.Hygiene - FeedHygieneDecrease)
	p.logf("Fed pet. Hunger is now %d, Energy is now %d, Hygiene is now %d", p.Hunger, p.Energy, p.Hygiene)
	return MsgFedPrefix + p.MoodText()
}

// Play trades energy, hunger and hygiene for happiness.
// A pet with less than PlayMinEnergy energy refuses and nothing changes.
func (p *Pet) Play(now time.Time) string {
	if !p.settle(now) {
		return p.GameOverText()
	}
	if p.Energy < PlayMinEnergy {
		p.logf("Refused to play, energy is %d", p.Energy)
		return MsgTooTired
	}
	p.Happiness = clamp(p.Happiness + PlayHappinessIncrease)
	p.Energy = clamp(p.Energy - PlayEnergyDecrease)
	p.Hunger = clamp(p.Hunger - PlayHungerDecrease)
	p.Hygiene = clamp(p.Hygiene - PlayHygieneDecrease)
	p.logf("Played with pet. Happiness is now %d, Energy is now %d, Hunger is now %d, Hygiene is now %d",
		p.Happiness, p.Energy, p.Hunger, p.Hygiene)
	return MsgFunPrefix + p.MoodText()
}

// Sleep restores energy but makes the pet hungrier
func (p *Pet) Sleep(now time.Time) string {
	if !p.settle(now) {
		return p.GameOverText()
	}
	p.Energy = clamp(p.Energy + SleepEnergyIncrease)
	p.Hunger = clamp(p.Hunger - SleepHungerDecrease)
	p.logf("Pet slept. Energy is now %d, Hunger is now %d", p.Energy, p.Hunger)
	return MsgRested
}

// Clean restores hygiene; the pet does not enjoy the bath
func (p *Pet) Clean(now time.Time) string {
	if !p.settle(now) {
		return p.GameOverText()
	}
	p.Hygiene = clamp(p.Hygiene + CleanHygieneIncrease)
	p.Happiness = clamp(p.Happiness - CleanHappinessDecrease)
	p.logf("Cleaned pet. Hygiene is now %d, Happiness is now %d", p.Hygiene, p.Happiness)
	return MsgClean
}

// Talk reports how the pet is feeling without changing it
func (p *Pet) Talk(now time.Time) string {
	if !p.settle(now) {
		return p.GameOverText()
	}
	return p.MoodText()
}

// Status settles pending decay and returns the stat bars
func (p *Pet) Status(now time.Time) string {
	p.Advance(now)
	return RenderStatus(p)
}
