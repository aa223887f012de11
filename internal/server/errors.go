package server

import (
	"errors"

	"survival-engine/internal/domain"

	"connectrpc.com/connect"
)

// rpcError maps domain error categories onto connect codes. Specific domain
// errors wrap exactly one category, so errors.Is on the categories is
// exhaustive.
func rpcError(err error) error {
	var code connect.Code
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		code = connect.CodeAlreadyExists
	case errors.Is(err, domain.ErrInvalidState):
		code = connect.CodeFailedPrecondition
	case errors.Is(err, domain.ErrInsufficientResource):
		code = connect.CodeFailedPrecondition
	case errors.Is(err, domain.ErrUnauthorized):
		code = connect.CodePermissionDenied
	case errors.Is(err, domain.ErrInvalidInput):
		code = connect.CodeInvalidArgument
	default:
		code = connect.CodeInternal
	}
	return connect.NewError(code, err)
}

func errUnauthenticated() error {
	return connect.NewError(connect.CodeUnauthenticated, errors.New("caller identity required"))
}

// isProfileNotFound lets profile queries treat a missing profile as an empty
// payload instead of an error.
func isProfileNotFound(err error) bool {
	return errors.Is(err, domain.ErrProfileNotFound)
}
