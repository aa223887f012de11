package server

import (
	"context"

	"connectrpc.com/connect"
)

func (s *EngineServer) AdminGrantCurrency(ctx context.Context, req *connect.Request[AmountRequest]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileSvc.AdminGrantCurrency(ctx, callerID, req.Msg.Amount)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) AdminSetLevel(ctx context.Context, req *connect.Request[AdminSetLevelRequest]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileSvc.AdminSetLevel(ctx, callerID, req.Msg.SurvivorName, req.Msg.Level)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) AdminUnlockKiller(ctx context.Context, req *connect.Request[KillerIDRequest]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileSvc.AdminUnlockKiller(ctx, callerID, req.Msg.KillerID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) AdminAddBot(ctx context.Context, req *connect.Request[AdminAddBotRequest]) (*connect.Response[AdminAddBotResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	bot, err := s.profileSvc.AdminAddBot(ctx, callerID, req.Msg.Bot)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&AdminAddBotResponse{Bot: bot}), nil
}

func (s *EngineServer) AdminAddShopItem(ctx context.Context, req *connect.Request[AdminAddShopItemRequest]) (*connect.Response[Empty], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.profileSvc.AdminAddShopItem(ctx, callerID, req.Msg.Item); err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&Empty{}), nil
}

func (s *EngineServer) AssignCallerUserRole(ctx context.Context, req *connect.Request[AssignRoleRequest]) (*connect.Response[Empty], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.socialSvc.AssignRole(ctx, callerID, req.Msg.User, req.Msg.Role); err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&Empty{}), nil
}

func (s *EngineServer) CreateAdminPanelEvent(ctx context.Context, req *connect.Request[CreateEventRequest]) (*connect.Response[Empty], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.socialSvc.CreateEvent(ctx, callerID, req.Msg.EventName, req.Msg.Description, req.Msg.Timestamp); err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&Empty{}), nil
}

func (s *EngineServer) GetAdminPanelEventsForCaller(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[EventsResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	events, err := s.socialSvc.EventsFor(ctx, callerID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&EventsResponse{Events: events}), nil
}
