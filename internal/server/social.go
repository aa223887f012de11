package server

import (
	"context"

	"survival-engine/internal/domain"

	"connectrpc.com/connect"
)

func (s *EngineServer) GetCallerUserRole(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[RoleResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	role, err := s.socialSvc.Role(ctx, callerID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&RoleResponse{Role: role}), nil
}

func (s *EngineServer) IsCallerAdmin(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[IsAdminResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	role, err := s.socialSvc.Role(ctx, callerID)
	if err != nil {
		return nil, rpcError(err)
	}
	admin := role == domain.RoleAdmin
	if !admin {
		admin, err = s.profileSvc.IsAdmin(ctx, callerID)
		if err != nil {
			return nil, rpcError(err)
		}
	}
	return connect.NewResponse(&IsAdminResponse{IsAdmin: admin}), nil
}

func (s *EngineServer) FollowUser(ctx context.Context, req *connect.Request[UserRequest]) (*connect.Response[Empty], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.socialSvc.Follow(ctx, callerID, req.Msg.User); err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&Empty{}), nil
}

func (s *EngineServer) UnfollowUser(ctx context.Context, req *connect.Request[UserRequest]) (*connect.Response[Empty], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.socialSvc.Unfollow(ctx, callerID, req.Msg.User); err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&Empty{}), nil
}

func (s *EngineServer) GetWhoCallerFollowing(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[UsersResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.socialSvc.Following(ctx, callerID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&UsersResponse{Users: users}), nil
}

func (s *EngineServer) GetWhoIsFollowingCaller(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[UsersResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.socialSvc.Followers(ctx, callerID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&UsersResponse{Users: users}), nil
}

func (s *EngineServer) GetCallersFriends(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[UsersResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.socialSvc.Friends(ctx, callerID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&UsersResponse{Users: users}), nil
}
