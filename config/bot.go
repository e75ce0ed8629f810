package config

// BotDifficulty affects reaction time and decision quality
type BotDifficulty int

const (
	BotDifficultyEasy BotDifficulty = iota
	BotDifficultyNormal
	BotDifficultyHard
)

// BotDifficultyConfig holds tuning values for bot behavior at a specific difficulty
type BotDifficultyConfig struct {
	ReactionDelay  int     // Steps between decisions
	AimTolerance   float64 // Max off-axis distance to consider a target lined up
	FireChance     float64 // Chance to pull the trigger when lined up
	SpecialChance  float64 // Chance to spend a held power-up when lined up
	WanderDuration int     // Steps to keep a random heading
}

// BotConfigData holds all bot-related configuration
type BotConfigData struct {
	Difficulties map[BotDifficulty]BotDifficultyConfig
}

// Bot holds bot AI configuration
var Bot BotConfigData

func init() {
	Bot = BotConfigData{
		Difficulties: map[BotDifficulty]BotDifficultyConfig{
			BotDifficultyEasy: {
				ReactionDelay:  30, // 0.5 second at 60 ticks
				AimTolerance:   15,
				FireChance:     0.3,
				SpecialChance:  0.2,
				WanderDuration: 90,
			},
			BotDifficultyNormal: {
				ReactionDelay:  15,
				AimTolerance:   25,
				FireChance:     0.6,
				SpecialChance:  0.5,
				WanderDuration: 60,
			},
			BotDifficultyHard: {
				ReactionDelay:  5,
				AimTolerance:   35,
				FireChance:     0.9,
				SpecialChance:  0.8,
				WanderDuration: 40,
			},
		},
	}
}
