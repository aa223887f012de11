// Package catalog holds the process-wide, read-mostly definition tables:
// killers, dungeons, bots and shop items. They are seeded once at startup and
// only grow through explicit admin appends.
package catalog

import (
	"sync"

	"survival-engine/internal/domain"

	"github.com/rs/zerolog"
)

type Catalog struct {
	mu        sync.RWMutex
	killers   []domain.Killer
	dungeons  []domain.Dungeon
	bots      []domain.Bot
	shopItems []domain.ShopItem
}

func New(logger zerolog.Logger) *Catalog {
	c := &Catalog{
		killers:   seedKillers(),
		dungeons:  seedDungeons(),
		bots:      seedBots(),
		shopItems: seedShopItems(),
	}
	logger.Info().
		Int("killers", len(c.killers)).
		Int("dungeons", len(c.dungeons)).
		Int("bots", len(c.bots)).
		Int("shop_items", len(c.shopItems)).
		Msg("catalog seeded")
	return c
}

// Killers returns a copy of the killer definitions, locked by default.
func (c *Catalog) Killers() []domain.Killer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Killer, len(c.killers))
	copy(out, c.killers)
	return out
}

func (c *Catalog) Dungeons() []domain.Dungeon {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Dungeon, len(c.dungeons))
	copy(out, c.dungeons)
	return out
}

func (c *Catalog) Bots() []domain.Bot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Bot, len(c.bots))
	copy(out, c.bots)
	return out
}

func (c *Catalog) ShopItems() []domain.ShopItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.ShopItem, len(c.shopItems))
	copy(out, c.shopItems)
	return out
}

func (c *Catalog) Bot(id int64) (domain.Bot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, b := range c.bots {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Bot{}, false
}

func (c *Catalog) ShopItem(name string) (domain.ShopItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.shopItems {
		if item.Name == name {
			return item, true
		}
	}
	return domain.ShopItem{}, false
}

// FindQuest resolves a quest id to its definition and owning dungeon.
func (c *Catalog) FindQuest(id int64) (domain.Quest, int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, d := range c.dungeons {
		for _, q := range d.AvailableQuests {
			if q.ID == id {
				return q, d.ID, true
			}
		}
	}
	return domain.Quest{}, 0, false
}

// FindCrate resolves a crate id to its definition and owning dungeon.
func (c *Catalog) FindCrate(id int64) (domain.Crate, int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, d := range c.dungeons {
		for _, cr := range d.AvailableCrates {
			if cr.ID == id {
				return cr, d.ID, true
			}
		}
	}
	return domain.Crate{}, 0, false
}

// AddBot appends a bot definition, assigning the next id.
func (c *Catalog) AddBot(bot domain.Bot) domain.Bot {
	c.mu.Lock()
	defer c.mu.Unlock()
	var max int64
	for _, b := range c.bots {
		if b.ID > max {
			max = b.ID
		}
	}
	bot.ID = max + 1
	c.bots = append(c.bots, bot)
	return bot
}

// AddShopItem appends a shop item. Fails if the name is taken.
func (c *Catalog) AddShopItem(item domain.ShopItem) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range c.shopItems {
		if existing.Name == item.Name {
			return domain.ErrDuplicateName
		}
	}
	c.shopItems = append(c.shopItems, item)
	return nil
}
