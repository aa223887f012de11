package server

import (
	"context"

	"survival-engine/internal/middleware"
	"survival-engine/internal/service"

	"connectrpc.com/connect"
	"golang.org/x/sync/errgroup"
)

// EngineServer is the Connect front of the game state engine. Handlers stay
// thin: extract the caller identity, delegate to a service, map errors.
type EngineServer struct {
	profileSvc *service.ProfileService
	combatSvc  *service.CombatService
	auraSvc    *service.AuraService
	dungeonSvc *service.DungeonService
	clanSvc    *service.ClanService
	socialSvc  *service.SocialService
}

func NewEngineServer(
	profileSvc *service.ProfileService,
	combatSvc *service.CombatService,
	auraSvc *service.AuraService,
	dungeonSvc *service.DungeonService,
	clanSvc *service.ClanService,
	socialSvc *service.SocialService,
) *EngineServer {
	return &EngineServer{
		profileSvc: profileSvc,
		combatSvc:  combatSvc,
		auraSvc:    auraSvc,
		dungeonSvc: dungeonSvc,
		clanSvc:    clanSvc,
		socialSvc:  socialSvc,
	}
}

func caller(ctx context.Context) (string, error) {
	id := middleware.GetCallerID(ctx)
	if id == "" {
		return "", errUnauthenticated()
	}
	return id, nil
}

func (s *EngineServer) CreatePlayerProfile(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileSvc.CreateProfile(ctx, callerID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

// GetCallerUserProfile loads the profile and the caller's effective role in
// parallel. A missing profile is a nil payload, not an error, so the client
// can drive first-run profile creation.
func (s *EngineServer) GetCallerUserProfile(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ProfileWithRoleResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	resp := &ProfileWithRoleResponse{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		profile, err := s.profileSvc.Get(gctx, callerID)
		if err != nil {
			if isProfileNotFound(err) {
				return nil
			}
			return err
		}
		resp.Profile = profile
		return nil
	})
	g.Go(func() error {
		role, err := s.socialSvc.Role(gctx, callerID)
		if err != nil {
			return err
		}
		resp.Role = role
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(resp), nil
}

func (s *EngineServer) GetUserProfile(ctx context.Context, req *connect.Request[UserRequest]) (*connect.Response[ProfileResponse], error) {
	if _, err := caller(ctx); err != nil {
		return nil, err
	}
	profile, err := s.profileSvc.Get(ctx, req.Msg.User)
	if err != nil {
		if isProfileNotFound(err) {
			return connect.NewResponse(&ProfileResponse{}), nil
		}
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) CreateSurvivor(ctx context.Context, req *connect.Request[CreateSurvivorRequest]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileSvc.CreateSurvivor(ctx, callerID, req.Msg.Name, req.Msg.Stats)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) SetActiveSurvivor(ctx context.Context, req *connect.Request[SurvivorNameRequest]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileSvc.SetActiveSurvivor(ctx, callerID, req.Msg.Name)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) EquipWeapon(ctx context.Context, req *connect.Request[ItemNameRequest]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileSvc.EquipWeapon(ctx, callerID, req.Msg.Name)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) EquipPet(ctx context.Context, req *connect.Request[ItemNameRequest]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileSvc.EquipPet(ctx, callerID, req.Msg.Name)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) AddWeapon(ctx context.Context, req *connect.Request[AddWeaponRequest]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileSvc.AddWeapon(ctx, callerID, req.Msg.Weapon)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) AddPet(ctx context.Context, req *connect.Request[AddPetRequest]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileSvc.AddPet(ctx, callerID, req.Msg.Pet)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) EarnCurrency(ctx context.Context, req *connect.Request[AmountRequest]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileSvc.EarnCurrency(ctx, callerID, req.Msg.Amount)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) UnlockNextKiller(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileSvc.UnlockNextKiller(ctx, callerID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) PurchaseAdminPanel(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileSvc.PurchaseAdminPanel(ctx, callerID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) BuyShopItem(ctx context.Context, req *connect.Request[ItemNameRequest]) (*connect.Response[ProfileResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileSvc.BuyShopItem(ctx, callerID, req.Msg.Name)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

func (s *EngineServer) GetAllShopItems(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ShopItemsResponse], error) {
	return connect.NewResponse(&ShopItemsResponse{Items: s.profileSvc.ShopItems()}), nil
}
