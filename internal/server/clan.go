package server

import (
	"context"

	"connectrpc.com/connect"
)

func (s *EngineServer) AddWhyDontYouJoin(ctx context.Context, req *connect.Request[AddListingRequest]) (*connect.Response[ListingResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	listing, err := s.clanSvc.AddListing(ctx, callerID, req.Msg.Name, req.Msg.Description, req.Msg.ImageURL)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ListingResponse{Listing: listing}), nil
}

func (s *EngineServer) GetActiveWhyDontYouJoins(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ListingsResponse], error) {
	listings, err := s.clanSvc.ActiveListings(ctx)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ListingsResponse{Listings: listings}), nil
}

func (s *EngineServer) CreateClanFromListing(ctx context.Context, req *connect.Request[CreateClanRequest]) (*connect.Response[ClanResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	clan, err := s.clanSvc.CreateClanFromListing(ctx, callerID, req.Msg.ListingID, req.Msg.ClanName)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ClanResponse{Clan: clan}), nil
}

func (s *EngineServer) JoinExistingClan(ctx context.Context, req *connect.Request[ClanIDRequest]) (*connect.Response[Empty], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.clanSvc.Join(ctx, callerID, req.Msg.ClanID); err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&Empty{}), nil
}

func (s *EngineServer) JoinRandomClan(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ClanResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	clan, err := s.clanSvc.JoinRandom(ctx, callerID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ClanResponse{Clan: clan}), nil
}

func (s *EngineServer) GetClanMarketplace(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ClansResponse], error) {
	clans, err := s.clanSvc.Marketplace(ctx)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&ClansResponse{Clans: clans}), nil
}
