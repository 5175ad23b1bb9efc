package api

import (
	"github.com/no0bAuntor/online-voting-system/config"
	"github.com/no0bAuntor/online-voting-system/internal/service"

	"github.com/gin-gonic/gin"
)

func RegisterAuthRouters(r *gin.Engine, authService service.AuthService) {

	handlers := NewAuthHandlers(authService)

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", handlers.Register)
		authGroup.POST("/login", handlers.Login)
	}
}

func RegisterVoteRouters(
	r *gin.Engine,
	ballotService service.BallotService,
	electionService service.ElectionService,
	candidateService service.CandidateService,
	cfg *config.Config,
) {

	handlers := NewVoteHandlers(ballotService, electionService, candidateService, cfg.Upload.Dir)

	voteGroup := r.Group("/api/vote")
	{
		voteGroup.GET("/status", handlers.GetStatus)
		voteGroup.POST("/status", handlers.SetStatus)
		voteGroup.GET("/voted", Secured(cfg.JWT.Secret), handlers.Voted)
		voteGroup.POST("", Secured(cfg.JWT.Secret), handlers.CastVote)
		voteGroup.GET("/candidates", handlers.ListCandidates)
		voteGroup.GET("/all", handlers.ListAllCandidates)
		voteGroup.POST("/add", handlers.AddCandidate)
		voteGroup.DELETE("/:id", handlers.DeleteCandidate)
		voteGroup.POST("/reset", handlers.ResetElection)
		voteGroup.GET("/stats", handlers.Stats)
	}
}

func RegisterResultRouters(r *gin.Engine, candidateService service.CandidateService) {

	handlers := NewResultHandlers(candidateService)

	resultGroup := r.Group("/api/result")
	{
		resultGroup.GET("", handlers.GetResults)
	}
}

func RegisterSymbolRouters(r *gin.Engine, symbolService service.SymbolService, cfg *config.Config) {

	handlers := NewSymbolHandlers(symbolService, cfg.Upload.Dir)

	symbolGroup := r.Group("/api/symbols")
	{
		symbolGroup.GET("", handlers.ListSymbols)
		symbolGroup.POST("", handlers.AddSymbol)
		symbolGroup.PUT("/:id", handlers.UpdateSymbol)
		symbolGroup.DELETE("/:id", handlers.DeleteSymbol)
	}
}
