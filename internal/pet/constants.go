package pet

// Game constants
const (
	MaxStat        = 100
	MinStat        = 0
	NeedsThreshold = 30 // Stats below this show up in the mood text
	PlayMinEnergy  = 15 // Play is refused below this energy
	BarStep        = 5  // Stat points per status bar segment
	BarGlyph       = "█"

	// Starting stats
	DefaultHunger    = 65
	DefaultHappiness = 60
	DefaultEnergy    = 55
	DefaultHygiene   = 70

	// Decay rates (points lost per minute)
	HungerDecayRate    = 4
	HappinessDecayRate = 2
	EnergyDecayRate    = 3
	HygieneDecayRate   = 1

	FeedHungerIncrease  = 25
	FeedEnergyIncrease  = 5
	FeedHygieneDecrease = 5

	PlayHappinessIncrease = 20
	PlayEnergyDecrease    = 15
	PlayHungerDecrease    = 10
	PlayHygieneDecrease   = 5

	SleepEnergyIncrease = 25
	SleepHungerDecrease = 10

	CleanHygieneIncrease   = 30
	CleanHappinessDecrease = 5
)

// Result messages
const (
	MsgFedPrefix       = "Yummy! "
	MsgFunPrefix       = "That was fun! "
	MsgTooTired        = "Too tired to play right now. Maybe a nap first?"
	MsgRested          = "Zzz... Feeling rested now!"
	MsgClean           = "Splash splash! All squeaky clean."
	MsgFarewell        = "See you next time!"
	MsgFeelingGreat    = "%s is feeling great!"
	MsgFeelsABit       = "%s feels a bit %s."
	MsgInstantLifetime = "less than a second"
	MsgGameOver        = "Oh no! %s didn't make it."
)
