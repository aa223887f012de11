package server

import (
	"net/http"

	"connectrpc.com/connect"
)

// ProcedurePrefix is the Connect service path every engine operation hangs
// off of.
const ProcedurePrefix = "/engine.v1.GameEngine/"

// Handler mounts every engine procedure on a mux. Each operation is a unary
// Connect handler over the JSON codec.
func (s *EngineServer) Handler() http.Handler {
	mux := http.NewServeMux()
	opts := handlerOptions()

	mount := func(name string, h http.Handler) {
		mux.Handle(ProcedurePrefix+name, h)
	}

	// Profile, progression, economy.
	mount("CreatePlayerProfile", connect.NewUnaryHandler(ProcedurePrefix+"CreatePlayerProfile", s.CreatePlayerProfile, opts...))
	mount("GetCallerUserProfile", connect.NewUnaryHandler(ProcedurePrefix+"GetCallerUserProfile", s.GetCallerUserProfile, opts...))
	mount("GetUserProfile", connect.NewUnaryHandler(ProcedurePrefix+"GetUserProfile", s.GetUserProfile, opts...))
	mount("CreateSurvivor", connect.NewUnaryHandler(ProcedurePrefix+"CreateSurvivor", s.CreateSurvivor, opts...))
	mount("SetActiveSurvivor", connect.NewUnaryHandler(ProcedurePrefix+"SetActiveSurvivor", s.SetActiveSurvivor, opts...))
	mount("EquipWeapon", connect.NewUnaryHandler(ProcedurePrefix+"EquipWeapon", s.EquipWeapon, opts...))
	mount("EquipPet", connect.NewUnaryHandler(ProcedurePrefix+"EquipPet", s.EquipPet, opts...))
	mount("AddWeapon", connect.NewUnaryHandler(ProcedurePrefix+"AddWeapon", s.AddWeapon, opts...))
	mount("AddPet", connect.NewUnaryHandler(ProcedurePrefix+"AddPet", s.AddPet, opts...))
	mount("EarnCurrency", connect.NewUnaryHandler(ProcedurePrefix+"EarnCurrency", s.EarnCurrency, opts...))
	mount("UnlockNextKiller", connect.NewUnaryHandler(ProcedurePrefix+"UnlockNextKiller", s.UnlockNextKiller, opts...))
	mount("PurchaseAdminPanel", connect.NewUnaryHandler(ProcedurePrefix+"PurchaseAdminPanel", s.PurchaseAdminPanel, opts...))
	mount("BuyShopItem", connect.NewUnaryHandler(ProcedurePrefix+"BuyShopItem", s.BuyShopItem, opts...))
	mount("GetAllShopItems", connect.NewUnaryHandler(ProcedurePrefix+"GetAllShopItems", s.GetAllShopItems, opts...))

	// Combat.
	mount("StartCombat", connect.NewUnaryHandler(ProcedurePrefix+"StartCombat", s.StartCombat, opts...))
	mount("PerformAttack", connect.NewUnaryHandler(ProcedurePrefix+"PerformAttack", s.PerformAttack, opts...))
	mount("PerformMagicAttack", connect.NewUnaryHandler(ProcedurePrefix+"PerformMagicAttack", s.PerformMagicAttack, opts...))
	mount("GetCombatStatus", connect.NewUnaryHandler(ProcedurePrefix+"GetCombatStatus", s.GetCombatStatus, opts...))
	mount("StartBotCombat", connect.NewUnaryHandler(ProcedurePrefix+"StartBotCombat", s.StartBotCombat, opts...))
	mount("AttackBot", connect.NewUnaryHandler(ProcedurePrefix+"AttackBot", s.AttackBot, opts...))
	mount("GetBotCombatStatus", connect.NewUnaryHandler(ProcedurePrefix+"GetBotCombatStatus", s.GetBotCombatStatus, opts...))
	mount("GetAllBots", connect.NewUnaryHandler(ProcedurePrefix+"GetAllBots", s.GetAllBots, opts...))

	// Aura clicker.
	mount("ClickAura", connect.NewUnaryHandler(ProcedurePrefix+"ClickAura", s.ClickAura, opts...))
	mount("Rebirth", connect.NewUnaryHandler(ProcedurePrefix+"Rebirth", s.Rebirth, opts...))

	// Dungeons.
	mount("StartQuest", connect.NewUnaryHandler(ProcedurePrefix+"StartQuest", s.StartQuest, opts...))
	mount("CompleteQuest", connect.NewUnaryHandler(ProcedurePrefix+"CompleteQuest", s.CompleteQuest, opts...))
	mount("UnlockCrate", connect.NewUnaryHandler(ProcedurePrefix+"UnlockCrate", s.UnlockCrate, opts...))
	mount("GetAllDungeonMaps", connect.NewUnaryHandler(ProcedurePrefix+"GetAllDungeonMaps", s.GetAllDungeonMaps, opts...))
	mount("GetAllDungeons", connect.NewUnaryHandler(ProcedurePrefix+"GetAllDungeons", s.GetAllDungeons, opts...))

	// Clans.
	mount("AddWhyDontYouJoin", connect.NewUnaryHandler(ProcedurePrefix+"AddWhyDontYouJoin", s.AddWhyDontYouJoin, opts...))
	mount("GetActiveWhyDontYouJoins", connect.NewUnaryHandler(ProcedurePrefix+"GetActiveWhyDontYouJoins", s.GetActiveWhyDontYouJoins, opts...))
	mount("CreateClanFromListing", connect.NewUnaryHandler(ProcedurePrefix+"CreateClanFromListing", s.CreateClanFromListing, opts...))
	mount("JoinExistingClan", connect.NewUnaryHandler(ProcedurePrefix+"JoinExistingClan", s.JoinExistingClan, opts...))
	mount("JoinRandomClan", connect.NewUnaryHandler(ProcedurePrefix+"JoinRandomClan", s.JoinRandomClan, opts...))
	mount("GetClanMarketplace", connect.NewUnaryHandler(ProcedurePrefix+"GetClanMarketplace", s.GetClanMarketplace, opts...))

	// Admin.
	mount("AdminGrantCurrency", connect.NewUnaryHandler(ProcedurePrefix+"AdminGrantCurrency", s.AdminGrantCurrency, opts...))
	mount("AdminSetLevel", connect.NewUnaryHandler(ProcedurePrefix+"AdminSetLevel", s.AdminSetLevel, opts...))
	mount("AdminUnlockKiller", connect.NewUnaryHandler(ProcedurePrefix+"AdminUnlockKiller", s.AdminUnlockKiller, opts...))
	mount("AdminAddBot", connect.NewUnaryHandler(ProcedurePrefix+"AdminAddBot", s.AdminAddBot, opts...))
	mount("AdminAddShopItem", connect.NewUnaryHandler(ProcedurePrefix+"AdminAddShopItem", s.AdminAddShopItem, opts...))
	mount("AssignCallerUserRole", connect.NewUnaryHandler(ProcedurePrefix+"AssignCallerUserRole", s.AssignCallerUserRole, opts...))
	mount("CreateAdminPanelEvent", connect.NewUnaryHandler(ProcedurePrefix+"CreateAdminPanelEvent", s.CreateAdminPanelEvent, opts...))
	mount("GetAdminPanelEventsForCaller", connect.NewUnaryHandler(ProcedurePrefix+"GetAdminPanelEventsForCaller", s.GetAdminPanelEventsForCaller, opts...))

	// Roles and social.
	mount("GetCallerUserRole", connect.NewUnaryHandler(ProcedurePrefix+"GetCallerUserRole", s.GetCallerUserRole, opts...))
	mount("IsCallerAdmin", connect.NewUnaryHandler(ProcedurePrefix+"IsCallerAdmin", s.IsCallerAdmin, opts...))
	mount("FollowUser", connect.NewUnaryHandler(ProcedurePrefix+"FollowUser", s.FollowUser, opts...))
	mount("UnfollowUser", connect.NewUnaryHandler(ProcedurePrefix+"UnfollowUser", s.UnfollowUser, opts...))
	mount("GetWhoCallerFollowing", connect.NewUnaryHandler(ProcedurePrefix+"GetWhoCallerFollowing", s.GetWhoCallerFollowing, opts...))
	mount("GetWhoIsFollowingCaller", connect.NewUnaryHandler(ProcedurePrefix+"GetWhoIsFollowingCaller", s.GetWhoIsFollowingCaller, opts...))
	mount("GetCallersFriends", connect.NewUnaryHandler(ProcedurePrefix+"GetCallersFriends", s.GetCallersFriends, opts...))

	return mux
}
