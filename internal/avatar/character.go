// Package avatar draws the decorative creature that wanders around next to
// the pet's stats. The pet model never depends on it.
package avatar

import (
	"math"
	"math/rand"

	"github.com/ojrac/opensimplex-go"
)

// Testable random source
var (
	RandIntn  = rand.Intn
	RandInt63 = rand.Int63
)

// Character is a drawable creature with its own idle animation
type Character interface {
	Name() string
	// Draw returns the resting sprite
	Draw() []string
	// Animate returns the sprite for the given frame
	Animate(frame int) []string
	// GameOver returns the sprite shown once the pet has died
	GameOver() []string
}

// Characters returns one of each available creature
func Characters() []Character {
	return []Character{
		NewDragon(RandInt63()),
		Unicorn{},
		Goblin{},
	}
}

// Random picks a creature for a new game
func Random() Character {
	chars := Characters()
	return chars[RandIntn(len(chars))]
}

// Dragon breathes fire in irregular bursts
type Dragon struct {
	noise opensimplex.Noise
}

// NewDragon creates a dragon whose fire pattern is derived from seed
func NewDragon(seed int64) *Dragon {
	return &Dragon{noise: opensimplex.New(seed)}
}

func (d *Dragon) Name() string { return "Dragon" }

func (d *Dragon) Draw() []string {
	return d.sprite("o", "    ")
}

func (d *Dragon) Animate(frame int) []string {
	fire := "    "
	if d.Breathing(frame) {
		fire = "~~>>"
	}
	return d.sprite("o", fire)
}

// Breathing reports whether the dragon shows fire on this frame
func (d *Dragon) Breathing(frame int) bool {
	return d.noise.Eval2(float64(frame)*0.15, 0) > 0.1
}

func (d *Dragon) GameOver() []string {
	return d.sprite("x", "    ")
}

func (d *Dragon) sprite(eye, fire string) []string {
	return []string{
		`   __/\__       `,
		`  ( ` + eye + `  ` + eye + ` )` + fire + `  `,
		`   \ vv /       `,
		`  /|    |\      `,
		`   ^^  ^^       `,
	}
}

// Unicorn tosses its mane
type Unicorn struct{}

func (Unicorn) Name() string { return "Unicorn" }

func (u Unicorn) Draw() []string {
	return u.sprite("o", "~~")
}

func (u Unicorn) Animate(frame int) []string {
	if math.Sin(float64(frame)*0.3) > 0 {
		return u.sprite("o", "~~")
	}
	return u.sprite("o", "=~")
}

func (u Unicorn) GameOver() []string {
	return u.sprite("x", "  ")
}

func (Unicorn) sprite(eye, mane string) []string {
	return []string{
		`     /     `,
		`  ` + mane + `(` + eye + `>    `,
		`   /||\    `,
		`   /  \    `,
	}
}

// Goblin swings its club up and down
type Goblin struct{}

const goblinClubTravel = 2

func (Goblin) Name() string { return "Goblin" }

func (g Goblin) Draw() []string {
	return g.sprite("o", 0)
}

func (g Goblin) Animate(frame int) []string {
	return g.sprite("o", ClubOffset(frame))
}

func (g Goblin) GameOver() []string {
	return g.sprite("x", goblinClubTravel)
}

// ClubOffset bounces between 0 and goblinClubTravel, one step every 4 frames
func ClubOffset(frame int) int {
	step := (frame / 4) % (2 * goblinClubTravel)
	if step > goblinClubTravel {
		return 2*goblinClubTravel - step
	}
	return step
}

func (Goblin) sprite(eye string, club int) []string {
	lines := []string{
		` ,--.      `,
		`( ` + eye + eye + ` )     `,
		` /||\      `,
		` d  b      `,
	}
	// The club hangs off the right hand and drops by up to two rows
	row := 1 + club
	runes := []rune(lines[row])
	runes[7] = 'O'
	lines[row] = string(runes)
	return lines
}
