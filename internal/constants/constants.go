package constants

// Centralized constants for env keys, headers, routes and the OpenRouter
// integration.
const (
	// Environment variable keys
	EnvArenaConfig   = "ARENA_CONFIG"
	EnvArenaDB       = "ARENA_DB"
	EnvOpenRouterKey = "OPENROUTER_API_KEY"
	EnvAIModel       = "AI_MODEL"

	// HTTP headers and content types
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderReferer       = "HTTP-Referer"
	HeaderTitle         = "X-Title"
	HeaderRequestID     = "X-Request-ID"

	ContentTypeJSON = "application/json"

	// Authorization prefix
	BearerPrefix = "Bearer "

	// OpenRouter API endpoint and defaults
	OpenRouterBaseURL      = "https://openrouter.ai"
	OpenRouterChatPath     = "/api/v1/chat/completions"
	OpenRouterDefaultModel = "deepseek/deepseek-r1:free"
	OpenRouterRefererValue = "https://ai-coliseum.xyz"
	OpenRouterTitleValue   = "AI Coliseum"
	AdjudicatorMaxTokens   = 500
	AdjudicatorTemperature = 0.8
)

// Routes used by the backend router
const (
	RouteAPIPrefix     = "/api"
	RouteHealth        = "/health"
	RouteVersion       = "/version"
	RouteAgents        = "/agents"
	RouteAgentByID     = "/agents/:agentID"
	RouteAgentStats    = "/agents/:agentID/stats"
	RouteLeaderboard   = "/leaderboard"
	RouteFights        = "/fights"
	RouteFightByID     = "/fights/:fightID"
	RouteFightResolve  = "/fights/:fightID/resolve"
	RouteMarkets       = "/markets"
	RouteMarketByID    = "/markets/:marketID"
	RouteMarketOdds    = "/markets/:marketID/odds"
	RouteMarketBet     = "/markets/:marketID/bet"
	RouteMarketBets    = "/markets/:marketID/bets"
	RouteMarketResolve = "/markets/:marketID/resolve"
	RouteBetClaim      = "/bets/:betID/claim"
	RouteBettorBets    = "/bettors/:address/bets"
)

// Common JSON response keys
const (
	JSONKeySuccess = "success"
	JSONKeyData    = "data"
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest = "Invalid request"

	ErrInvalidAgentID   = "Invalid agent ID"
	ErrAgentNotFound    = "Agent not found"
	ErrAgentNameLength  = "Agent name must be 1-32 characters"
	ErrInvalidOwner     = "Owner must be a valid wallet address"
	ErrFailedListAgents = "Failed to list agents"
	ErrFailedSaveAgent  = "Failed to save agent"

	ErrInvalidFightID      = "Invalid fight ID"
	ErrFightNotFound       = "Fight not found"
	ErrAgentsMustDiffer    = "Agents must be different"
	ErrAgentsMustBeActive  = "Both agents must be active"
	ErrInvalidStakeAmount  = "Invalid stake amount"
	ErrFailedListFights    = "Failed to list fights"
	ErrFailedSaveFight     = "Failed to save fight"
	ErrFightNotPending     = "Fight already resolved or in progress"
	ErrFightResolution     = "Fight resolution failed"
	ErrInvalidFightStatus  = "Invalid fight status filter"
	ErrInvalidMarketStatus = "Invalid market status filter"

	ErrInvalidMarketID    = "Invalid market ID"
	ErrMarketNotFound     = "Market not found"
	ErrMarketExists       = "Market already exists for this fight"
	ErrMarketNotOpen      = "Market is not open for betting"
	ErrMarketNotResolved  = "Market is not resolved"
	ErrInvalidMarketAgent = "Invalid agent for this market"
	ErrInvalidWinner      = "Invalid winner for this market"
	ErrInvalidBetAmount   = "Bet amount must be a positive number"
	ErrInvalidBettor      = "Bettor must be a valid wallet address"
	ErrFailedListMarkets  = "Failed to list markets"
	ErrFailedSaveMarket   = "Failed to save market"
	ErrFailedListBets     = "Failed to list bets"
	ErrFailedPlaceBet     = "Failed to place bet"

	ErrInvalidBetID      = "Invalid bet ID"
	ErrBetNotFound       = "Bet not found"
	ErrBetAlreadyClaimed = "Bet already claimed"
	ErrBettorMismatch    = "Bet belongs to a different bettor"
	ErrFailedClaimBet    = "Failed to claim bet"
)

// Logging field names
const (
	LogFieldAddr      = "addr"
	LogFieldFightID   = "fight_id"
	LogFieldMarketID  = "market_id"
	LogFieldAgentID   = "agent_id"
	LogFieldBetID     = "bet_id"
	LogFieldRequestID = "request_id"
	LogFieldStatus    = "status"
	LogFieldModel     = "model"
)
