package server

import (
	"context"

	"survival-engine/internal/domain"

	"connectrpc.com/connect"
)

func (s *EngineServer) StartCombat(ctx context.Context, req *connect.Request[StartCombatRequest]) (*connect.Response[CombatStatusResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	session, err := s.combatSvc.StartCombat(ctx, callerID, req.Msg.Enemy)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(combatStatus(session)), nil
}

func (s *EngineServer) PerformAttack(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[CombatOutcomeResponse], error) {
	return s.performAttack(ctx, domain.AttackPhysical)
}

func (s *EngineServer) PerformMagicAttack(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[CombatOutcomeResponse], error) {
	return s.performAttack(ctx, domain.AttackMagic)
}

func (s *EngineServer) performAttack(ctx context.Context, kind domain.AttackKind) (*connect.Response[CombatOutcomeResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	outcome, err := s.combatSvc.Attack(ctx, callerID, kind)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&CombatOutcomeResponse{Outcome: outcome}), nil
}

func (s *EngineServer) GetCombatStatus(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[CombatStatusResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	session, err := s.combatSvc.Status(ctx, callerID, domain.CombatEnemy)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(combatStatus(session)), nil
}

func (s *EngineServer) StartBotCombat(ctx context.Context, req *connect.Request[StartBotCombatRequest]) (*connect.Response[BotCombatStatusResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	session, err := s.combatSvc.StartBotCombat(ctx, callerID, req.Msg.BotID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(botCombatStatus(session)), nil
}

func (s *EngineServer) AttackBot(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[CombatOutcomeResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	outcome, err := s.combatSvc.AttackBot(ctx, callerID)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(&CombatOutcomeResponse{Outcome: outcome}), nil
}

func (s *EngineServer) GetBotCombatStatus(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[BotCombatStatusResponse], error) {
	callerID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	session, err := s.combatSvc.Status(ctx, callerID, domain.CombatBot)
	if err != nil {
		return nil, rpcError(err)
	}
	return connect.NewResponse(botCombatStatus(session)), nil
}

func (s *EngineServer) GetAllBots(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[BotsResponse], error) {
	return connect.NewResponse(&BotsResponse{Bots: s.combatSvc.Bots()}), nil
}

func combatStatus(session *domain.CombatSession) *CombatStatusResponse {
	if session == nil {
		return &CombatStatusResponse{}
	}
	enemy := session.Enemy
	return &CombatStatusResponse{
		CombatOngoing: session.Ongoing,
		EnemyName:     enemy.Name,
		EnemyHealth:   session.EnemyHealth,
		PlayerHealth:  session.PlayerHealth,
		PlayerMax:     session.PlayerMaxHealth,
		Enemy:         &enemy,
	}
}

func botCombatStatus(session *domain.CombatSession) *BotCombatStatusResponse {
	if session == nil {
		return &BotCombatStatusResponse{}
	}
	return &BotCombatStatusResponse{
		CombatOngoing: session.Ongoing,
		BotName:       session.Enemy.Name,
		BotHealth:     session.EnemyHealth,
		PlayerHealth:  session.PlayerHealth,
		PlayerMax:     session.PlayerMaxHealth,
	}
}
