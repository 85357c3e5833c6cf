package pet

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Rates are the points each stat loses per minute of elapsed time
type Rates struct {
	Hunger    int
	Happiness int
	Energy    int
	Hygiene   int
}

// Config allows overriding the starting stats and decay rates of a new pet
type Config struct {
	Hunger    int
	Happiness int
	Energy    int
	Hygiene   int
	Rates     Rates
}

// DefaultConfig returns the standard starting stats and decay rates
func DefaultConfig() Config {
	return Config{
		Hunger:    DefaultHunger,
		Happiness: DefaultHappiness,
		Energy:    DefaultEnergy,
		Hygiene:   DefaultHygiene,
		Rates: Rates{
			Hunger:    HungerDecayRate,
			Happiness: HappinessDecayRate,
			Energy:    EnergyDecayRate,
			Hygiene:   HygieneDecayRate,
		},
	}
}

// Pet represents the virtual pet's state.
//
// Name and Rates are fixed once the pet is created. Stats are always kept
// within [MinStat, MaxStat] and LastUpdate never moves backwards.
type Pet struct {
	ID         uuid.UUID
	Name       string
	Hunger     int
	Happiness  int
	Energy     int
	Hygiene    int
	Rates      Rates
	Born       time.Time
	LastUpdate time.Time
}

// New creates a pet with default values or the values in cfg if provided.
// The caller is responsible for passing a non-empty name.
func New(name string, now time.Time, cfg *Config) *Pet {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}

	p := &Pet{
		ID:         uuid.New(),
		Name:       name,
		Hunger:     clamp(c.Hunger),
		Happiness:  clamp(c.Happiness),
		Energy:     clamp(c.Energy),
		Hygiene:    clamp(c.Hygiene),
		Rates:      c.Rates,
		Born:       now,
		LastUpdate: now,
	}
	p.logf("Created new pet: %s", p.Name)
	return p
}

// IsAlive reports whether every stat is above zero
func (p *Pet) IsAlive() bool {
	return p.Hunger > MinStat && p.Happiness > MinStat &&
		p.Energy > MinStat && p.Hygiene > MinStat
}

// Advance applies the decay accumulated since LastUpdate.
//
// Partial points are truncated, so a few seconds between calls may decay
// nothing for slow stats. Times at or before LastUpdate are ignored.
func (p *Pet) Advance(now time.Time) {
	if !p.IsAlive() {
		return
	}

	minutes := now.Sub(p.LastUpdate).Minutes()
	if minutes <= 0 {
		return
	}

	decay := func(stat, rate int) int {
		return clamp(stat - int(minutes*float64(rate)))
	}

	p.Hunger = decay(p.Hunger, p.Rates.Hunger)
	p.Happiness = decay(p.Happiness, p.Rates.Happiness)
	p.Energy = decay(p.Energy, p.Rates.Energy)
	p.Hygiene = decay(p.Hygiene, p.Rates.Hygiene)
	p.LastUpdate = now

	if !p.IsAlive() {
		p.logf("Game over after %.1f minutes of decay (hunger %d, happiness %d, energy %d, hygiene %d)",
			minutes, p.Hunger, p.Happiness, p.Energy, p.Hygiene)
	}
}

// Lifetime describes how long the pet has been looked after, e.g. "12 minutes"
func (p *Pet) Lifetime() string {
	if p.LastUpdate.Sub(p.Born) < time.Second {
		return MsgInstantLifetime
	}
	return strings.TrimSpace(humanize.RelTime(p.Born, p.LastUpdate, "", ""))
}

// GameOverText is shown once the pet has died
func (p *Pet) GameOverText() string {
	return fmt.Sprintf(MsgGameOver, p.Name)
}

func (p *Pet) logf(format string, args ...any) {
	id := p.ID.String()
	log.Printf("[%s] "+format, append([]any{id[:8]}, args...)...)
}

func clamp(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
