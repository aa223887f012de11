package domain

import (
	"survival-engine/internal/constants"
)

// EffectiveStats composes a survivor's base stats with the equipped weapon
// bonuses and the equipped pet's level bonus. Composition is pure addition and
// is recomputed on every read so equip changes take effect immediately.
func EffectiveStats(s Survivor, w *Weapon, p *Pet) StatBlock {
	stats := s.Stats
	stats.Level = s.Level
	if w != nil {
		stats.Attack += w.AttackBonus
		stats.Defense += w.DefenseBonus
		stats.Speed += w.SpeedBonus
		stats.Magic += w.MagicBonus
	}
	if p != nil {
		stats.Level += p.LevelBonus
	}
	return stats
}

// ScaleReward applies a percentage bonus to a reward amount, rounding down.
func ScaleReward(amount, bonusPercent int64) int64 {
	return amount * (100 + bonusPercent) / 100
}

// CreditCurrency adds a non-negative amount to the profile balance.
func (p *Profile) CreditCurrency(amount int64) error {
	if amount < 0 {
		return ErrInvalidInput
	}
	p.Currency += amount
	return nil
}

// DebitCurrency removes amount from the balance, failing without mutation if
// the balance does not cover it.
func (p *Profile) DebitCurrency(amount int64) error {
	if amount < 0 {
		return ErrInvalidInput
	}
	if p.Currency < amount {
		return ErrInsufficientFunds
	}
	p.Currency -= amount
	return nil
}

// GainExperience credits experience to the survivor and applies the level-up
// loop: whenever accumulated experience reaches level*ExperiencePerLevel the
// survivor levels up and the requirement is consumed, repeatedly.
func (s *Survivor) GainExperience(exp int64) {
	if exp < 0 {
		return
	}
	s.Experience += exp
	for s.Experience >= s.Level*constants.ExperiencePerLevel {
		s.Experience -= s.Level * constants.ExperiencePerLevel
		s.Level++
	}
}

// Survivor returns the named survivor, or nil.
func (p *Profile) Survivor(name string) *Survivor {
	for i := range p.Survivors {
		if p.Survivors[i].Name == name {
			return &p.Survivors[i]
		}
	}
	return nil
}

// Active returns the active survivor, or nil when none is set.
func (p *Profile) Active() *Survivor {
	if p.ActiveSurvivor == nil {
		return nil
	}
	return p.Survivor(*p.ActiveSurvivor)
}

// Weapon returns the owned weapon by name, or nil.
func (p *Profile) Weapon(name string) *Weapon {
	for i := range p.Weapons {
		if p.Weapons[i].Name == name {
			return &p.Weapons[i]
		}
	}
	return nil
}

// Pet returns the owned pet by name, or nil.
func (p *Profile) Pet(name string) *Pet {
	for i := range p.Pets {
		if p.Pets[i].Name == name {
			return &p.Pets[i]
		}
	}
	return nil
}

// Equipped resolves the currently equipped weapon and pet.
func (p *Profile) Equipped() (*Weapon, *Pet) {
	var w *Weapon
	var pet *Pet
	if p.EquippedWeapon != nil {
		w = p.Weapon(*p.EquippedWeapon)
	}
	if p.EquippedPet != nil {
		pet = p.Pet(*p.EquippedPet)
	}
	return w, pet
}

// ActiveEffectiveStats composes the active survivor's combat stats.
func (p *Profile) ActiveEffectiveStats() (StatBlock, error) {
	s := p.Active()
	if s == nil {
		return StatBlock{}, ErrNoActiveSurvivor
	}
	w, pet := p.Equipped()
	return EffectiveStats(*s, w, pet), nil
}

func ContainsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func ContainsKey(keys []string, key string) bool {
	for _, v := range keys {
		if v == key {
			return true
		}
	}
	return false
}

// NewProfile builds an empty profile for a caller, seeded with the killer
// catalog (everything locked) and the aura baseline.
func NewProfile(callerID string, killers []Killer) *Profile {
	p := &Profile{
		CallerID:          callerID,
		Survivors:         []Survivor{},
		Killers:           make([]Killer, len(killers)),
		Weapons:           []Weapon{},
		Pets:              []Pet{},
		Inventory:         []string{},
		StartedQuests:     []int64{},
		CompletedQuests:   []int64{},
		OpenedCrates:      []int64{},
		CollectedKeys:     []string{},
		AuraLevel:         1,
		RebirthMultiplier: 1,
	}
	copy(p.Killers, killers)
	for i := range p.Killers {
		p.Killers[i].Unlocked = false
	}
	return p
}
