package server

import (
	"context"

	"connectrpc.com/connect"
)

func (s *EngineServer) ClickAura(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.auraSvc.Click(ctx, callerID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) Rebirth(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.auraSvc.Rebirth(ctx, callerID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}
