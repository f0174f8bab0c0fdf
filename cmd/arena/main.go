package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kiran797979/monad-blitz-hyderabad/internal/adjudicator"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/api"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/config"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/constants"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/engine"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/logging"
	"github.com/kiran797979/monad-blitz-hyderabad/internal/storage"
)

func main() {
	// Local development keeps secrets in a .env file; a missing file is fine.
	_ = godotenv.Load()

	configPath := os.Getenv(constants.EnvArenaConfig)
	if configPath == "" {
		configPath = "./arena_config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Invalid arena configuration", err, logging.Fields{"config_path": configPath})
	}

	// Allow the DB path to be configured via ARENA_DB, falling back to the
	// config file and its default.
	dbPath := os.Getenv(constants.EnvArenaDB)
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewSQLiteRepository(db)

	apiKey := os.Getenv(constants.EnvOpenRouterKey)
	if apiKey == "" {
		logging.Warn("OPENROUTER_API_KEY not set; fights will use stats-based combat", nil, nil)
	}
	model := os.Getenv(constants.EnvAIModel)
	if model == "" {
		model = cfg.AdjudicatorModel
	}
	adj := adjudicator.New(apiKey, model, cfg.AdjudicatorTimeout)

	rng := engine.NewLockedRand(time.Now().UnixNano())
	handler := api.NewArenaHandler(repo, adj, rng)

	router := gin.Default()
	router.Use(api.RequestID())
	router.Use(api.CORS(cfg.FrontendURL))

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteHealth, handler.Health)
		apiRoutes.GET(constants.RouteVersion, handler.Version)

		apiRoutes.POST(constants.RouteAgents, handler.CreateAgent)
		apiRoutes.GET(constants.RouteAgents, handler.ListAgents)
		apiRoutes.GET(constants.RouteAgentByID, handler.GetAgent)
		apiRoutes.GET(constants.RouteAgentStats, handler.GetAgentStats)
		apiRoutes.GET(constants.RouteLeaderboard, handler.ListLeaderboard)

		apiRoutes.POST(constants.RouteFights, handler.CreateFight)
		apiRoutes.GET(constants.RouteFights, handler.ListFights)
		apiRoutes.GET(constants.RouteFightByID, handler.GetFight)
		apiRoutes.POST(constants.RouteFightResolve, handler.ResolveFight)

		apiRoutes.POST(constants.RouteMarkets, handler.CreateMarket)
		apiRoutes.GET(constants.RouteMarkets, handler.ListMarkets)
		apiRoutes.GET(constants.RouteMarketByID, handler.GetMarket)
		apiRoutes.GET(constants.RouteMarketOdds, handler.GetOdds)
		apiRoutes.POST(constants.RouteMarketBet, handler.PlaceBet)
		apiRoutes.GET(constants.RouteMarketBets, handler.ListMarketBets)
		apiRoutes.POST(constants.RouteMarketResolve, handler.ResolveMarket)
		apiRoutes.POST(constants.RouteBetClaim, handler.ClaimBet)
		apiRoutes.GET(constants.RouteBettorBets, handler.ListBettorBets)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
