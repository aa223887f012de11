package fx

import (
	"survival-engine/internal/catalog"
	"survival-engine/internal/config"
	"survival-engine/internal/database"
	"survival-engine/internal/logger"
	"survival-engine/internal/repository"
	"survival-engine/internal/server"
	"survival-engine/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	fx.Provide(database.New),
	fx.Provide(catalog.New),
	// repos
	fx.Provide(repository.NewProfileRepository),
	fx.Provide(repository.NewCombatRepository),
	fx.Provide(repository.NewClanRepository),
	fx.Provide(repository.NewSocialRepository),
	// svc
	fx.Provide(service.NewProfileLocks),
	fx.Provide(service.NewProfileService),
	fx.Provide(service.NewCombatService),
	fx.Provide(service.NewAuraService),
	fx.Provide(service.NewDungeonService),
	fx.Provide(service.NewClanService),
	fx.Provide(service.NewSocialService),
	// server
	fx.Provide(server.NewEngineServer),
)
