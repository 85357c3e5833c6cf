package pet

import (
	"fmt"
	"strings"
)

// statLine is one row of the status display
type statLine struct {
	Label string
	Value int
	Need  string // Mood descriptor used when Value is below NeedsThreshold
}

// statLines returns the four stats in declaration order
func statLines(p *Pet) []statLine {
	return []statLine{
		{Label: "Hunger", Value: p.Hunger, Need: "hungry"},
		{Label: "Happiness", Value: p.Happiness, Need: "bored"},
		{Label: "Energy", Value: p.Energy, Need: "sleepy"},
		{Label: "Hygiene", Value: p.Hygiene, Need: "dirty"},
	}
}

// unmetNeeds returns the descriptors of every stat that needs attention
func unmetNeeds(p *Pet) []string {
	var needs []string
	for _, line := range statLines(p) {
		if line.Value < NeedsThreshold {
			needs = append(needs, line.Need)
		}
	}
	return needs
}

// MoodText describes the pet's current needs in a sentence
func (p *Pet) MoodText() string {
	needs := unmetNeeds(p)
	if len(needs) == 0 {
		return fmt.Sprintf(MsgFeelingGreat, p.Name)
	}
	return fmt.Sprintf(MsgFeelsABit, p.Name, strings.Join(needs, " and "))
}

// Bar returns one glyph per BarStep points of value
func Bar(value int) string {
	return strings.Repeat(BarGlyph, clamp(value)/BarStep)
}

// RenderStatus formats every stat as a labelled percentage and bar
func RenderStatus(p *Pet) string {
	var lines []string
	for _, line := range statLines(p) {
		lines = append(lines, fmt.Sprintf("%10s: %3d %% |%s", line.Label, line.Value, Bar(line.Value)))
	}
	return strings.Join(lines, "\n")
}
