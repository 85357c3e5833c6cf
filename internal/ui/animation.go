package ui

import (
	"time"

	"dramagotchi/internal/pet"
)

// AnimationType represents the type of action animation
type AnimationType int

const (
	AnimNone AnimationType = iota
	AnimFeed
	AnimPlay
	AnimSleep
	AnimClean
)

// Animation holds the current reaction animation state
type Animation struct {
	Type      AnimationType
	Frame     int
	StartTime time.Time
}

// AnimationFrames contains the frames shown in place of the menu after an action
var AnimationFrames = map[AnimationType][]string{
	AnimFeed: {
		"  🍖        \n      (o_o) ",
		"     🍖     \n      (o_o) ",
		"            \n      (^o^) \n     *nom*  ",
		"            \n      (^_^) \n    *munch* ",
	},
	AnimPlay: {
		" ⚽          (o_o) ",
		"     ⚽      (o_o) ",
		"         ⚽  (^o^) ",
		"     ⚽      (^_^) \n           *boing* ",
		" ⚽          (^o^) \n           *catch!*",
	},
	AnimSleep: {
		"  (o_o)     ",
		"  (-_-)     \n         z  ",
		"  (-_-)  z  \n        z   \n         z  ",
	},
	AnimClean: {
		"  ~ (o_o) ~ ",
		" ° ~(o_o)~ °\n  splash!   ",
		"°  ° (^_^) ° \n   *sparkle*",
	},
}

// AnimationFrameDuration is how long each frame displays
const AnimationFrameDuration = 250 * time.Millisecond

// AnimationFor returns the reaction animation for a completed action
func AnimationFor(a pet.Action) AnimationType {
	switch a {
	case pet.ActionFeed:
		return AnimFeed
	case pet.ActionPlay:
		return AnimPlay
	case pet.ActionSleep:
		return AnimSleep
	case pet.ActionClean:
		return AnimClean
	default:
		return AnimNone
	}
}

// GetAnimationFrame returns the current frame for an animation
func GetAnimationFrame(anim Animation) string {
	frames := AnimationFrames[anim.Type]
	if len(frames) == 0 {
		return ""
	}
	if anim.Frame >= len(frames) {
		return frames[len(frames)-1]
	}
	return frames[anim.Frame]
}

// IsAnimationComplete returns true if the animation has finished
func IsAnimationComplete(anim Animation) bool {
	return anim.Frame >= AnimationTotalFrames(anim.Type)
}

// AnimationTotalFrames returns the number of frames for an animation type
func AnimationTotalFrames(animType AnimationType) int {
	return len(AnimationFrames[animType])
}
