package pet

import (
	"strings"
	"testing"
	"time"
)

func TestFeed(t *testing.T) {
	p := newTestPet(90, 50, 50, 50)
	msg := p.Feed(baseTime)

	assertStats(t, p, 100, 50, 55, 45)
	if !strings.HasPrefix(msg, MsgFedPrefix) {
		t.Errorf("Expected fed message, got %q", msg)
	}
	if !strings.Contains(msg, "feeling great") {
		t.Errorf("Expected mood text in %q", msg)
	}
}

func TestFeedSettlesDecayFirst(t *testing.T) {
	p := New("Bubbles", baseTime, nil)
	p.Feed(baseTime.Add(10 * time.Minute))

	// Decay to 25/40/25/60, then +25 hunger, +5 energy, -5 hygiene
	assertStats(t, p, 50, 40, 30, 55)
}

func TestPlay(t *testing.T) {
	p := newTestPet(50, 90, 50, 50)
	msg := p.Play(baseTime)

	assertStats(t, p, 40, 100, 35, 45)
	if !strings.HasPrefix(msg, MsgFunPrefix) {
		t.Errorf("Expected fun message, got %q", msg)
	}
}

func TestPlayEnergyThreshold(t *testing.T) {
	tests := []struct {
		name    string
		energy  int
		refused bool
	}{
		{"energy 10 refuses", 10, true},
		{"energy 14 refuses", 14, true},
		{"energy 15 plays", 15, false},
		{"energy 16 plays", 16, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPet(50, 50, tt.energy, 50)
			msg := p.Play(baseTime)

			if tt.refused {
				if msg != MsgTooTired {
					t.Errorf("Expected refusal, got %q", msg)
				}
				assertStats(t, p, 50, 50, tt.energy, 50)
				return
			}
			if !strings.HasPrefix(msg, MsgFunPrefix) {
				t.Errorf("Expected fun message, got %q", msg)
			}
			if p.Energy != tt.energy-PlayEnergyDecrease {
				t.Errorf("Expected energy %d, got %d", tt.energy-PlayEnergyDecrease, p.Energy)
			}
		})
	}
}

func TestPlayThresholdAfterDecay(t *testing.T) {
	// 20 energy decays by 3/min to 14 after two minutes
	p := newTestPet(80, 80, 20, 80)
	msg := p.Play(baseTime.Add(2 * time.Minute))

	if msg != MsgTooTired {
		t.Errorf("Expected refusal after decay, got %q", msg)
	}
	assertStats(t, p, 72, 76, 14, 78)
}

func TestSleep(t *testing.T) {
	p := newTestPet(5, 50, 90, 50)
	msg := p.Sleep(baseTime)

	assertStats(t, p, 0, 50, 100, 50)
	if msg != MsgRested {
		t.Errorf("Expected rested message, got %q", msg)
	}
}

func TestClean(t *testing.T) {
	p := newTestPet(50, 3, 50, 80)
	msg := p.Clean(baseTime)

	assertStats(t, p, 50, 0, 50, 100)
	if msg != MsgClean {
		t.Errorf("Expected clean message, got %q", msg)
	}
}

func TestTalk(t *testing.T) {
	p := newTestPet(10, 80, 10, 80)
	msg := p.Talk(baseTime)

	assertStats(t, p, 10, 80, 10, 80)
	if msg != "Bubbles feels a bit hungry and sleepy." {
		t.Errorf("Unexpected talk message %q", msg)
	}
}

func TestStatusOnlyAdvances(t *testing.T) {
	p := New("Bubbles", baseTime, nil)
	out := p.Status(baseTime.Add(10 * time.Minute))

	assertStats(t, p, 25, 40, 25, 60)
	if out != RenderStatus(p) {
		t.Errorf("Status should render the settled stats, got:\n%s", out)
	}
}

func TestActionsKeepStatsInRange(t *testing.T) {
	extremes := [][4]int{
		{1, 1, 1, 1},
		{100, 100, 100, 100},
		{99, 1, 99, 1},
		{1, 99, 15, 99},
	}

	for _, stats := range extremes {
		for _, a := range Actions() {
			p := newTestPet(stats[0], stats[1], stats[2], stats[3])
			p.Do(a, baseTime)
			assertInRange(t, p)
		}
	}
}

func TestActionsAfterGameOver(t *testing.T) {
	mutating := []Action{ActionFeed, ActionPlay, ActionSleep, ActionClean, ActionTalk}

	for _, a := range mutating {
		t.Run(a.String(), func(t *testing.T) {
			p := newTestPet(0, 50, 50, 50)
			msg := p.Do(a, baseTime.Add(time.Minute))

			if msg != p.GameOverText() {
				t.Errorf("Expected game over text, got %q", msg)
			}
			assertStats(t, p, 0, 50, 50, 50)
		})
	}
}

func TestActionDiesDuringSettle(t *testing.T) {
	// Hygiene 1 decays to 0 after one minute, so feeding comes too late
	p := newTestPet(80, 80, 80, 1)
	msg := p.Feed(baseTime.Add(time.Minute))

	if msg != p.GameOverText() {
		t.Errorf("Expected game over text, got %q", msg)
	}
	if p.Hunger != 76 {
		t.Errorf("Feed should not apply after game over, hunger %d", p.Hunger)
	}
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		token string
		want  Action
		ok    bool
	}{
		{"feed", ActionFeed, true},
		{"Füttern", ActionFeed, true},
		{"futter", ActionFeed, true},
		{"  PLAY ", ActionPlay, true},
		{"spielen", ActionPlay, true},
		{"sleep", ActionSleep, true},
		{"schlafen", ActionSleep, true},
		{"clean", ActionClean, true},
		{"waschen", ActionClean, true},
		{"talk", ActionTalk, true},
		{"reden", ActionTalk, true},
		{"status", ActionStatus, true},
		{"help", ActionHelp, true},
		{"hilfe", ActionHelp, true},
		{"quit", ActionQuit, true},
		{"ende", ActionQuit, true},
		{"dance", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := ParseAction(tt.token)
			if ok != tt.ok {
				t.Fatalf("ParseAction(%q) ok = %v, want %v", tt.token, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseAction(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestActionNamesRoundTrip(t *testing.T) {
	for _, a := range Actions() {
		got, ok := ParseAction(a.String())
		if !ok || got != a {
			t.Errorf("ParseAction(%q) = %v, %v", a.String(), got, ok)
		}
	}
	if Action(99).String() != "unknown" {
		t.Errorf("Unexpected name for invalid action: %s", Action(99))
	}
}

func TestDoHelpAndQuit(t *testing.T) {
	p := New("Bubbles", baseTime, nil)

	help := p.Do(ActionHelp, baseTime.Add(time.Hour))
	for _, a := range Actions() {
		if !strings.Contains(help, a.String()) {
			t.Errorf("Help text missing %q: %s", a, help)
		}
	}
	if p.Do(ActionQuit, baseTime.Add(time.Hour)) != MsgFarewell {
		t.Error("Expected farewell message")
	}
	assertStats(t, p, DefaultHunger, DefaultHappiness, DefaultEnergy, DefaultHygiene)
}
