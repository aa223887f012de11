package server

import (
	"survival-engine/internal/domain"
	"survival-engine/internal/service"
)

// Request and response message types for the engine's RPC surface. Mutating
// calls are keyed implicitly by the caller identity; no profile id ever
// travels in a request body.

type Empty struct{}

type ProfileResponse struct {
	Profile *domain.Profile `json:"profile"`
}

type ProfileWithRoleResponse struct {
	Profile *domain.Profile `json:"profile"`
	Role    domain.UserRole `json:"role"`
}

type CreateSurvivorRequest struct {
	Name  string           `json:"name"`
	Stats domain.StatBlock `json:"stats"`
}

type SurvivorNameRequest struct {
	Name string `json:"name"`
}

type ItemNameRequest struct {
	Name string `json:"name"`
}

type AddWeaponRequest struct {
	Weapon domain.Weapon `json:"weapon"`
}

type AddPetRequest struct {
	Pet domain.Pet `json:"pet"`
}

type AmountRequest struct {
	Amount int64 `json:"amount"`
}

type AdminSetLevelRequest struct {
	SurvivorName string `json:"survivorName"`
	Level        int64  `json:"level"`
}

type KillerIDRequest struct {
	KillerID int64 `json:"killerId"`
}

type AssignRoleRequest struct {
	User string          `json:"user"`
	Role domain.UserRole `json:"role"`
}

type AdminAddBotRequest struct {
	Bot domain.Bot `json:"bot"`
}

type AdminAddBotResponse struct {
	Bot domain.Bot `json:"bot"`
}

type AdminAddShopItemRequest struct {
	Item domain.ShopItem `json:"item"`
}

type CreateEventRequest struct {
	EventName   string `json:"eventName"`
	Description string `json:"description"`
	Timestamp   int64  `json:"timestamp"`
}

type EventsResponse struct {
	Events []domain.AdminPanelEvent `json:"events"`
}

type StartCombatRequest struct {
	Enemy domain.Enemy `json:"enemy"`
}

type CombatStatusResponse struct {
	CombatOngoing bool          `json:"combatOngoing"`
	EnemyName     string        `json:"enemyName"`
	EnemyHealth   int64         `json:"enemyHealth"`
	PlayerHealth  int64         `json:"playerHealth"`
	PlayerMax     int64         `json:"playerMaxHealth"`
	Enemy         *domain.Enemy `json:"enemy,omitempty"`
}

type StartBotCombatRequest struct {
	BotID int64 `json:"botId"`
}

type BotCombatStatusResponse struct {
	CombatOngoing bool   `json:"combatOngoing"`
	BotName       string `json:"botName"`
	BotHealth     int64  `json:"botHealth"`
	PlayerHealth  int64  `json:"playerHealth"`
	PlayerMax     int64  `json:"playerMaxHealth"`
}

type CombatOutcomeResponse struct {
	Outcome *service.CombatOutcome `json:"outcome"`
}

type QuestIDRequest struct {
	QuestID int64 `json:"questId"`
}

type CrateIDRequest struct {
	CrateID int64 `json:"crateId"`
}

type DungeonsResponse struct {
	Dungeons []domain.Dungeon `json:"dungeons"`
}

type BotsResponse struct {
	Bots []domain.Bot `json:"bots"`
}

type ShopItemsResponse struct {
	Items []domain.ShopItem `json:"items"`
}

type AddListingRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type ListingResponse struct {
	Listing *domain.WhyDontYouJoin `json:"listing"`
}

type ListingsResponse struct {
	Listings []domain.WhyDontYouJoin `json:"listings"`
}

type CreateClanRequest struct {
	ListingID int64  `json:"whyJoinId"`
	ClanName  string `json:"clanName,omitempty"`
}

type ClanResponse struct {
	Clan *domain.Clan `json:"clan"`
}

type ClansResponse struct {
	Clans []domain.Clan `json:"clans"`
}

type ClanIDRequest struct {
	ClanID int64 `json:"clanId"`
}

type UserRequest struct {
	User string `json:"user"`
}

type UsersResponse struct {
	Users []string `json:"users"`
}

type RoleResponse struct {
	Role domain.UserRole `json:"role"`
}

type IsAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}
