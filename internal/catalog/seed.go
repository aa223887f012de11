package catalog

import "survival-engine/internal/domain"

func ptr[T any](v T) *T { return &v }

func seedKillers() []domain.Killer {
	return []domain.Killer{
		{
			ID:          1,
			Name:        "The Stalker",
			Description: "A patient hunter that never loses a trail.",
			URL:         "/assets/killers/stalker.png",
			Stats:       domain.StatBlock{Health: 150, Attack: 25, Defense: 10, Speed: 15, Magic: 0, Level: 1},
			Storyline:   ptr("Once a tracker for hire, now it tracks for hunger alone."),
		},
		{
			ID:             2,
			Name:           "The Butcher",
			Description:    "Raw strength, no subtlety.",
			URL:            "/assets/killers/butcher.png",
			Stats:          domain.StatBlock{Health: 220, Attack: 40, Defense: 20, Speed: 8, Magic: 0, Level: 3},
			UnlockCriteria: ptr[int64](500),
		},
		{
			ID:             3,
			Name:           "The Hexweaver",
			Description:    "Strikes through wards and armor alike.",
			URL:            "/assets/killers/hexweaver.png",
			Stats:          domain.StatBlock{Health: 180, Attack: 15, Defense: 15, Speed: 12, Magic: 45, Level: 5},
			UnlockCriteria: ptr[int64](2000),
			Storyline:      ptr("The coven burned; the weaver did not."),
		},
		{
			ID:             4,
			Name:           "The Warden",
			Description:    "The dungeon's final gatekeeper.",
			URL:            "/assets/killers/warden.png",
			Stats:          domain.StatBlock{Health: 400, Attack: 55, Defense: 40, Speed: 10, Magic: 20, Level: 10},
			UnlockCriteria: ptr[int64](10000),
		},
	}
}

func seedDungeons() []domain.Dungeon {
	return []domain.Dungeon{
		{
			ID:          1,
			Difficulty:  1,
			Description: "The Flooded Cellars — shallow tunnels beneath the old estate.",
			AvailableQuests: []domain.Quest{
				{ID: 101, Name: "Clear the Rats", Description: "Thin out the nests near the stairwell.", RewardCurrency: 50},
				{ID: 102, Name: "Recover the Lantern", Description: "Someone left a light burning below.", RewardCurrency: 120, RewardKey: ptr("rusty key")},
			},
			AvailableCrates: []domain.Crate{
				{ID: 201, Reward: 300, RequiredKey: "rusty key", Location: "behind the collapsed arch"},
			},
		},
		{
			ID:          2,
			Difficulty:  3,
			Description: "The Bone Gallery — a long hall of things that should have stayed buried.",
			AvailableQuests: []domain.Quest{
				{ID: 103, Name: "Silence the Choir", Description: "The singing keeps the dead awake.", RewardCurrency: 250},
				{ID: 104, Name: "Map the Gallery", Description: "Chart the hall without waking it.", RewardCurrency: 400, RewardKey: ptr("bone key")},
			},
			AvailableCrates: []domain.Crate{
				{ID: 202, Reward: 900, RequiredKey: "bone key", Location: "beneath the ossuary altar"},
				{ID: 203, Reward: 1500, RequiredKey: "warden's key", Location: "the sealed reliquary"},
			},
		},
		{
			ID:          3,
			Difficulty:  5,
			Description: "The Warden's Keep — nobody has opened every door and returned.",
			AvailableQuests: []domain.Quest{
				{ID: 105, Name: "Breach the Inner Gate", Description: "The gate only opens from the inside.", RewardCurrency: 800, RewardKey: ptr("warden's key")},
			},
			AvailableCrates: []domain.Crate{
				{ID: 204, Reward: 5000, RequiredKey: "warden's key", Location: "the Warden's own vault"},
			},
		},
	}
}

func seedBots() []domain.Bot {
	return []domain.Bot{
		{ID: 1, Name: "Training Dummy", Difficulty: 1, RewardCurrency: 25, RewardExp: 40},
		{ID: 2, Name: "Sparring Drone", Difficulty: 3, RewardCurrency: 90, RewardExp: 150},
		{ID: 3, Name: "Arena Construct", Difficulty: 5, RewardCurrency: 200, RewardExp: 350},
		{ID: 4, Name: "Siegebreaker", Difficulty: 8, RewardCurrency: 450, RewardExp: 700},
	}
}

func seedShopItems() []domain.ShopItem {
	return []domain.ShopItem{
		{
			Name:        "Rusted Machete",
			Description: "It has seen better decades.",
			Price:       150,
			Kind:        domain.ShopItemWeapon,
			Weapon:      &domain.Weapon{Name: "Rusted Machete", Description: "It has seen better decades.", AttackBonus: 8},
		},
		{
			Name:        "Wardstone Blade",
			Description: "Cuts flesh and hexes alike.",
			Price:       1200,
			Kind:        domain.ShopItemWeapon,
			Weapon:      &domain.Weapon{Name: "Wardstone Blade", Description: "Cuts flesh and hexes alike.", AttackBonus: 18, MagicBonus: 12, SpeedBonus: 4},
		},
		{
			Name:        "Cellar Cat",
			Description: "Finds what others overlook.",
			Price:       600,
			Kind:        domain.ShopItemPet,
			Pet:         &domain.Pet{Name: "Cellar Cat", Description: "Finds what others overlook.", DropRateBonus: 15, LevelBonus: 1},
		},
		{
			Name:        "Grave Owl",
			Description: "Old eyes, older lessons.",
			Price:       1500,
			Kind:        domain.ShopItemPet,
			Pet:         &domain.Pet{Name: "Grave Owl", Description: "Old eyes, older lessons.", ExperienceBonus: 25, LevelBonus: 2},
		},
		{
			Name:        "Stale Ration",
			Description: "Edible, technically.",
			Price:       20,
			Kind:        domain.ShopItemConsumable,
		},
	}
}
