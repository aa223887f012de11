package server

import (
	"errors"
	"testing"

	"survival-engine/internal/domain"

	"connectrpc.com/connect"
)

func TestRPCErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{name: "profile not found", err: domain.ErrProfileNotFound, want: connect.CodeNotFound},
		{name: "duplicate name", err: domain.ErrDuplicateName, want: connect.CodeAlreadyExists},
		{name: "already member", err: domain.ErrAlreadyMember, want: connect.CodeAlreadyExists},
		{name: "no active combat", err: domain.ErrNoActiveCombat, want: connect.CodeFailedPrecondition},
		{name: "max rebirth", err: domain.ErrMaxRebirthReached, want: connect.CodeFailedPrecondition},
		{name: "insufficient funds", err: domain.ErrInsufficientFunds, want: connect.CodeFailedPrecondition},
		{name: "key required", err: domain.ErrKeyRequired, want: connect.CodeFailedPrecondition},
		{name: "unauthorized", err: domain.ErrUnauthorized, want: connect.CodePermissionDenied},
		{name: "invalid input", err: domain.ErrInvalidInput, want: connect.CodeInvalidArgument},
		{name: "unknown", err: errors.New("disk on fire"), want: connect.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := connect.CodeOf(rpcError(tt.err)); got != tt.want {
				t.Errorf("code = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsProfileNotFound(t *testing.T) {
	if !isProfileNotFound(domain.ErrProfileNotFound) {
		t.Error("missed the missing-profile error")
	}
	if isProfileNotFound(domain.ErrNotFound) {
		t.Error("bare category treated as missing profile")
	}
	if isProfileNotFound(errors.New("other")) {
		t.Error("unrelated error treated as missing profile")
	}
}
