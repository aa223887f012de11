package domain

import "time"

// StatBlock is the additive stat vector shared by survivors, killers, enemies
// and bots. Composition is pure addition; see EffectiveStats.
type StatBlock struct {
	Health  int64 `json:"health"`
	Attack  int64 `json:"attack"`
	Defense int64 `json:"defense"`
	Speed   int64 `json:"speed"`
	Magic   int64 `json:"magic"`
	Level   int64 `json:"level"`
}

// Survivor is identified by name within a profile. Level and Experience are
// the canonical decomposition of total accumulated experience: Experience is
// the in-level remainder, always < Level*ExperiencePerLevel.
type Survivor struct {
	Name       string    `json:"name"`
	Level      int64     `json:"level"`
	Experience int64     `json:"experience"`
	Stats      StatBlock `json:"stats"`
}

type Weapon struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	AttackBonus  int64  `json:"attackBonus"`
	DefenseBonus int64  `json:"defenseBonus"`
	SpeedBonus   int64  `json:"speedBonus"`
	MagicBonus   int64  `json:"magicBonus"`
}

// Pet bonuses are economy modifiers except LevelBonus, which is the only pet
// field that participates in combat stat composition.
type Pet struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	ExperienceBonus int64  `json:"experienceBonus"` // percent, applied to combat reward experience
	LevelBonus      int64  `json:"levelBonus"`
	DropRateBonus   int64  `json:"dropRateBonus"` // percent, applied to combat reward currency
}

type Killer struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	URL            string    `json:"url"`
	Unlocked       bool      `json:"unlocked"`
	Stats          StatBlock `json:"stats"`
	UnlockCriteria *int64    `json:"unlockCriteria,omitempty"`
	Storyline      *string   `json:"storyline,omitempty"`
}

// Enemy is a combat opponent definition. For regular combat the client picks
// one from the catalog and submits it with the start call; for bot combat the
// definition is resolved server-side from the bot catalog.
type Enemy struct {
	Name           string    `json:"name"`
	Stats          StatBlock `json:"stats"`
	RewardCurrency int64     `json:"rewardCurrency"`
	RewardExp      int64     `json:"rewardExp"`
}

type Bot struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Difficulty     int64  `json:"difficulty"`
	RewardCurrency int64  `json:"rewardCurrency"`
	RewardExp      int64  `json:"rewardExp"`
}

type ShopItemKind string

const (
	ShopItemWeapon     ShopItemKind = "weapon"
	ShopItemPet        ShopItemKind = "pet"
	ShopItemConsumable ShopItemKind = "consumable"
)

// ShopItem is a purchasable catalog entry. Exactly one of Weapon/Pet is set
// for the matching kind; consumables are delivered by name into the
// profile inventory.
type ShopItem struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       int64        `json:"price"`
	Kind        ShopItemKind `json:"kind"`
	Weapon      *Weapon      `json:"weapon,omitempty"`
	Pet         *Pet         `json:"pet,omitempty"`
}

type Quest struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	RewardCurrency int64   `json:"rewardCurrency"`
	RewardKey      *string `json:"rewardKey,omitempty"`
}

type Crate struct {
	ID          int64  `json:"id"`
	Reward      int64  `json:"reward"`
	RequiredKey string `json:"requiredKey"`
	Location    string `json:"location"`
}

type Dungeon struct {
	ID              int64   `json:"id"`
	Difficulty      int64   `json:"difficulty"`
	Description     string  `json:"description"`
	AvailableQuests []Quest `json:"availableQuests"`
	AvailableCrates []Crate `json:"availableCrates"`
}

// Profile is the complete per-caller game-state record. It is persisted as a
// single row keyed by caller id and mutated only through serialized
// read-mutate-write transitions.
type Profile struct {
	CallerID          string     `json:"-"`
	Currency          int64      `json:"currency"`
	Survivors         []Survivor `json:"survivors"`
	ActiveSurvivor    *string    `json:"activeSurvivor,omitempty"`
	Killers           []Killer   `json:"killers"`
	Weapons           []Weapon   `json:"weapons"`
	Pets              []Pet      `json:"pets"`
	EquippedWeapon    *string    `json:"equippedWeapon,omitempty"`
	EquippedPet       *string    `json:"equippedPet,omitempty"`
	Inventory         []string   `json:"inventory"`
	StartedQuests     []int64    `json:"startedQuests"`
	CompletedQuests   []int64    `json:"completedQuests"`
	OpenedCrates      []int64    `json:"openedCrates"`
	CollectedKeys     []string   `json:"collectedKeys"`
	ActiveDungeonID   *int64     `json:"activeDungeonId,omitempty"`
	HasAdminPanel     bool       `json:"hasAdminPanel"`
	AuraPower         int64      `json:"auraPower"`
	AuraLevel         int64      `json:"auraLevel"`
	RebirthCount      int64      `json:"rebirthCount"`
	RebirthMultiplier int64      `json:"rebirthMultiplier"`
}

type CombatKind string

const (
	CombatEnemy CombatKind = "enemy"
	CombatBot   CombatKind = "bot"
)

// CombatSession is the single active encounter for a profile. Health fields
// are server-owned and never accepted as client input.
type CombatSession struct {
	CallerID     string
	Kind         CombatKind
	Enemy        Enemy
	BotID        *int64
	EnemyHealth  int64
	PlayerHealth int64
	// PlayerMaxHealth is the effective max health snapshotted at start,
	// kept for status reporting.
	PlayerMaxHealth int64
	Ongoing         bool
}

type CombatWinner string

const (
	WinnerPlayer CombatWinner = "player"
	WinnerEnemy  CombatWinner = "enemy"
)

// CombatResult is present only on the call that resolves the session.
type CombatResult struct {
	Winner CombatWinner `json:"winner"`
}

type AttackKind string

const (
	AttackPhysical AttackKind = "physical"
	AttackMagic    AttackKind = "magic"
)

type Clan struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Founder     string    `json:"founder"`
	Members     []string  `json:"members"`
	MemberCount int64     `json:"memberCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WhyDontYouJoin is a single-use recruitment listing; creating a clan from it
// consumes it.
type WhyDontYouJoin struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Leader      string    `json:"leader"`
	Active      bool      `json:"active"`
	MemberCount int64     `json:"memberCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
	RoleGuest UserRole = "guest"
)

type AdminPanelEvent struct {
	ID          string    `json:"id"`
	Creator     string    `json:"creator"`
	EventName   string    `json:"eventName"`
	Description string    `json:"description"`
	Timestamp   int64     `json:"timestamp"`
	CreatedAt   time.Time `json:"createdAt"`
}
