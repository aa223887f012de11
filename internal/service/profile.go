package service

import (
	"context"
	"sort"
	"strings"

	"survival-engine/internal/catalog"
	"survival-engine/internal/constants"
	"survival-engine/internal/domain"
	"survival-engine/internal/repository"

	"github.com/rs/zerolog"
)

// ProfileService owns progression and economy transitions: survivor
// management, equipment, currency, killers, the admin panel and the shop.
type ProfileService struct {
	profiles *repository.ProfileRepository
	social   *repository.SocialRepository
	catalog  *catalog.Catalog
	locks    *ProfileLocks
	logger   zerolog.Logger
}

func NewProfileService(
	profiles *repository.ProfileRepository,
	social *repository.SocialRepository,
	cat *catalog.Catalog,
	locks *ProfileLocks,
	logger zerolog.Logger,
) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		social:   social,
		catalog:  cat,
		locks:    locks,
		logger:   logger,
	}
}

// mutate runs fn against the caller's profile under the per-caller lock and
// persists the result only when fn succeeds, keeping failed transitions
// invisible.
func (s *ProfileService) mutate(ctx context.Context, callerID string, fn func(*domain.Profile) error) (*domain.Profile, error) {
	unlock := s.locks.Lock(callerID)
	defer unlock()

	profile, err := s.profiles.Get(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if err := fn(profile); err != nil {
		return nil, err
	}
	if err := s.profiles.Put(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// CreateProfile creates an empty profile for the caller. Repeat calls are
// no-op successes.
func (s *ProfileService) CreateProfile(ctx context.Context, callerID string) (*domain.Profile, error) {
	unlock := s.locks.Lock(callerID)
	defer unlock()

	exists, err := s.profiles.Exists(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return s.profiles.Get(ctx, callerID)
	}

	profile := domain.NewProfile(callerID, s.catalog.Killers())
	if err := s.profiles.Put(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info().Str("caller_id", callerID).Msg("profile created")
	return profile, nil
}

func (s *ProfileService) Get(ctx context.Context, callerID string) (*domain.Profile, error) {
	return s.profiles.Get(ctx, callerID)
}

func (s *ProfileService) CreateSurvivor(ctx context.Context, callerID, name string, stats domain.StatBlock) (*domain.Profile, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.mutate(ctx, callerID, func(p *domain.Profile) error {
		if p.Survivor(name) != nil {
			return domain.ErrDuplicateName
		}
		stats.Level = 1
		p.Survivors = append(p.Survivors, domain.Survivor{
			Name:  name,
			Level: 1,
			Stats: stats,
		})
		if p.ActiveSurvivor == nil {
			p.ActiveSurvivor = &name
		}
		return nil
	})
}

func (s *ProfileService) SetActiveSurvivor(ctx context.Context, callerID, name string) (*domain.Profile, error) {
	return s.mutate(ctx, callerID, func(p *domain.Profile) error {
		if p.Survivor(name) == nil {
			return domain.ErrNotFound
		}
		p.ActiveSurvivor = &name
		return nil
	})
}

func (s *ProfileService) EquipWeapon(ctx context.Context, callerID, name string) (*domain.Profile, error) {
	return s.mutate(ctx, callerID, func(p *domain.Profile) error {
		if p.Weapon(name) == nil {
			return domain.ErrNotOwned
		}
		p.EquippedWeapon = &name
		return nil
	})
}

func (s *ProfileService) EquipPet(ctx context.Context, callerID, name string) (*domain.Profile, error) {
	return s.mutate(ctx, callerID, func(p *domain.Profile) error {
		if p.Pet(name) == nil {
			return domain.ErrNotOwned
		}
		p.EquippedPet = &name
		return nil
	})
}

func (s *ProfileService) AddWeapon(ctx context.Context, callerID string, weapon domain.Weapon) (*domain.Profile, error) {
	if strings.TrimSpace(weapon.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.mutate(ctx, callerID, func(p *domain.Profile) error {
		if p.Weapon(weapon.Name) != nil {
			return domain.ErrDuplicateName
		}
		p.Weapons = append(p.Weapons, weapon)
		return nil
	})
}

func (s *ProfileService) AddPet(ctx context.Context, callerID string, pet domain.Pet) (*domain.Profile, error) {
	if strings.TrimSpace(pet.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.mutate(ctx, callerID, func(p *domain.Profile) error {
		if p.Pet(pet.Name) != nil {
			return domain.ErrDuplicateName
		}
		p.Pets = append(p.Pets, pet)
		return nil
	})
}

func (s *ProfileService) EarnCurrency(ctx context.Context, callerID string, amount int64) (*domain.Profile, error) {
	return s.mutate(ctx, callerID, func(p *domain.Profile) error {
		return p.CreditCurrency(amount)
	})
}

// UnlockNextKiller unlocks the lowest-id locked killer. The catalog's unlock
// criteria fields are informational only; the observed contract unlocks
// unconditionally.
func (s *ProfileService) UnlockNextKiller(ctx context.Context, callerID string) (*domain.Profile, error) {
	return s.mutate(ctx, callerID, func(p *domain.Profile) error {
		sort.Slice(p.Killers, func(i, j int) bool { return p.Killers[i].ID < p.Killers[j].ID })
		for i := range p.Killers {
			if !p.Killers[i].Unlocked {
				p.Killers[i].Unlocked = true
				s.logger.Info().
					Str("caller_id", callerID).
					Int64("killer_id", p.Killers[i].ID).
					Msg("killer unlocked")
				return nil
			}
		}
		return domain.ErrAllUnlocked
	})
}

// PurchaseAdminPanel deducts the panel price exactly once. The flag is
// checked before the deduction so a repeat purchase is a no-op success.
func (s *ProfileService) PurchaseAdminPanel(ctx context.Context, callerID string) (*domain.Profile, error) {
	return s.mutate(ctx, callerID, func(p *domain.Profile) error {
		if p.HasAdminPanel {
			return nil
		}
		if err := p.DebitCurrency(constants.AdminPanelPrice); err != nil {
			return err
		}
		p.HasAdminPanel = true
		return nil
	})
}

// BuyShopItem deducts the catalog price and delivers the item into the
// matching collection.
func (s *ProfileService) BuyShopItem(ctx context.Context, callerID, name string) (*domain.Profile, error) {
	item, ok := s.catalog.ShopItem(name)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.mutate(ctx, callerID, func(p *domain.Profile) error {
		switch item.Kind {
		case domain.ShopItemWeapon:
			if p.Weapon(item.Weapon.Name) != nil {
				return domain.ErrDuplicateName
			}
		case domain.ShopItemPet:
			if p.Pet(item.Pet.Name) != nil {
				return domain.ErrDuplicateName
			}
		}
		if err := p.DebitCurrency(item.Price); err != nil {
			return err
		}
		switch item.Kind {
		case domain.ShopItemWeapon:
			p.Weapons = append(p.Weapons, *item.Weapon)
		case domain.ShopItemPet:
			p.Pets = append(p.Pets, *item.Pet)
		case domain.ShopItemConsumable:
			p.Inventory = append(p.Inventory, item.Name)
		}
		return nil
	})
}

// ShopItems exposes the shop catalog.
func (s *ProfileService) ShopItems() []domain.ShopItem {
	return s.catalog.ShopItems()
}

// IsAdmin reports whether the caller may use admin operations: either the
// admin role or the purchased admin panel grants access. Checked server-side
// on every admin call.
func (s *ProfileService) IsAdmin(ctx context.Context, callerID string) (bool, error) {
	role, ok, err := s.social.GetRole(ctx, callerID)
	if err != nil {
		return false, err
	}
	if ok && role == domain.RoleAdmin {
		return true, nil
	}

	profile, err := s.profiles.Get(ctx, callerID)
	if err == domain.ErrProfileNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return profile.HasAdminPanel, nil
}

func (s *ProfileService) requireAdmin(ctx context.Context, callerID string) error {
	admin, err := s.IsAdmin(ctx, callerID)
	if err != nil {
		return err
	}
	if !admin {
		return domain.ErrUnauthorized
	}
	return nil
}

func (s *ProfileService) AdminGrantCurrency(ctx context.Context, callerID string, amount int64) (*domain.Profile, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	return s.mutate(ctx, callerID, func(p *domain.Profile) error {
		return p.CreditCurrency(amount)
	})
}

// AdminSetLevel overrides a survivor's level, clamped to the valid range.
func (s *ProfileService) AdminSetLevel(ctx context.Context, callerID, survivorName string, level int64) (*domain.Profile, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	if level < constants.MinSurvivorLevel || level > constants.MaxSurvivorLevel {
		return nil, domain.ErrInvalidInput
	}
	return s.mutate(ctx, callerID, func(p *domain.Profile) error {
		survivor := p.Survivor(survivorName)
		if survivor == nil {
			return domain.ErrNotFound
		}
		survivor.Level = level
		survivor.Experience = 0
		return nil
	})
}

func (s *ProfileService) AdminUnlockKiller(ctx context.Context, callerID string, killerID int64) (*domain.Profile, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return nil, err
	}
	return s.mutate(ctx, callerID, func(p *domain.Profile) error {
		for i := range p.Killers {
			if p.Killers[i].ID == killerID {
				p.Killers[i].Unlocked = true
				return nil
			}
		}
		return domain.ErrNotFound
	})
}

// AdminAddBot appends a bot definition to the shared catalog.
func (s *ProfileService) AdminAddBot(ctx context.Context, callerID string, bot domain.Bot) (domain.Bot, error) {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return domain.Bot{}, err
	}
	if strings.TrimSpace(bot.Name) == "" || bot.Difficulty < 1 {
		return domain.Bot{}, domain.ErrInvalidInput
	}
	return s.catalog.AddBot(bot), nil
}

// AdminAddShopItem appends a shop item to the shared catalog.
func (s *ProfileService) AdminAddShopItem(ctx context.Context, callerID string, item domain.ShopItem) error {
	if err := s.requireAdmin(ctx, callerID); err != nil {
		return err
	}
	if strings.TrimSpace(item.Name) == "" || item.Price < 0 {
		return domain.ErrInvalidInput
	}
	switch item.Kind {
	case domain.ShopItemWeapon:
		if item.Weapon == nil {
			return domain.ErrInvalidInput
		}
	case domain.ShopItemPet:
		if item.Pet == nil {
			return domain.ErrInvalidInput
		}
	case domain.ShopItemConsumable:
	default:
		return domain.ErrInvalidInput
	}
	return s.catalog.AddShopItem(item)
}
