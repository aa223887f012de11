package constants

import "time"

const (
	// AdminPanelPrice is the one-time currency cost of the admin panel upgrade.
	AdminPanelPrice = 10_000

	MinSurvivorLevel = 1
	MaxSurvivorLevel = 2400

	// ExperiencePerLevel scales the per-level experience requirement:
	// a survivor at level N levels up once its experience reaches N*ExperiencePerLevel.
	ExperiencePerLevel = 100

	// DamageFloor guarantees combat terminates even against high-defense targets.
	DamageFloor = 1
)

const (
	// MaxRebirthCount caps the prestige loop.
	MaxRebirthCount = 1_000_000

	// AuraBaseRequirement scales the aura level threshold: level*AuraBaseRequirement,
	// multiplied by rebirthCount^2 after the first rebirth.
	AuraBaseRequirement = 100
)

const (
	BotHealthPerDifficulty  = 100
	BotAttackPerDifficulty  = 10
	BotDefensePerDifficulty = 5
)

const (
	DatabaseTimeout = 5 * time.Second
	RequestTimeout  = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)
