package server

import (
	"context"

	"connectrpc.com/connect"
)

func (s *EngineServer) StartQuest(ctx context.Context, req *connect.Request[QuestIDRequest]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.dungeonSvc.StartQuest(ctx, callerID, req.Msg.QuestID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) CompleteQuest(ctx context.Context, req *connect.Request[QuestIDRequest]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.dungeonSvc.CompleteQuest(ctx, callerID, req.Msg.QuestID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) UnlockCrate(ctx context.Context, req *connect.Request[CrateIDRequest]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.dungeonSvc.UnlockCrate(ctx, callerID, req.Msg.CrateID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) GetAllDungeonMaps(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[DungeonsResponse], error) {
	return connect.NewResponse(&DungeonsResponse{Dungeons: s.dungeonSvc.Dungeons()}), nil
}

// GetAllDungeons is the older name for the same catalog query, kept for
// client compatibility.
func (s *EngineServer) GetAllDungeons(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[DungeonsResponse], error) {
	return s.GetAllDungeonMaps(ctx, req)
}
