package domain

import (
	"errors"
	"fmt"
)

// Category sentinels. Specific condition errors below wrap exactly one
// category so the transport layer can map them with errors.Is.
var (
	ErrNotFound             = errors.New("not found")
	ErrAlreadyExists        = errors.New("already exists")
	ErrInvalidState         = errors.New("invalid state")
	ErrInsufficientResource = errors.New("insufficient resource")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidInput         = errors.New("invalid input")
)

var (
	ErrProfileNotFound   = fmt.Errorf("profile %w", ErrNotFound)
	ErrDuplicateName     = fmt.Errorf("name %w", ErrAlreadyExists)
	ErrNotOwned          = fmt.Errorf("item not owned: %w", ErrNotFound)
	ErrNoActiveSurvivor  = fmt.Errorf("no active survivor: %w", ErrInvalidState)
	ErrAlreadyInCombat   = fmt.Errorf("combat already ongoing: %w", ErrInvalidState)
	ErrNoActiveCombat    = fmt.Errorf("no active combat: %w", ErrInvalidState)
	ErrInsufficientFunds = fmt.Errorf("insufficient funds: %w", ErrInsufficientResource)
	ErrKeyRequired       = fmt.Errorf("key required: %w", ErrInsufficientResource)
	ErrMaxRebirthReached = fmt.Errorf("max rebirth count reached: %w", ErrInvalidState)
	ErrAllUnlocked       = fmt.Errorf("all killers unlocked: %w", ErrInvalidState)
	ErrAlreadyMember     = fmt.Errorf("already a clan member: %w", ErrAlreadyExists)
	ErrAlreadyLeader     = fmt.Errorf("caller leads this listing: %w", ErrInvalidState)
	ErrNoClansAvailable  = fmt.Errorf("no clans available: %w", ErrNotFound)
)
