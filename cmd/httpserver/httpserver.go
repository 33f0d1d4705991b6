// Package httpserver manages server creation and api routing.
package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/engineering-bank/backend/internal/accountdelivery"
	"github.com/engineering-bank/backend/internal/accountrepo"
	"github.com/engineering-bank/backend/internal/accountservice"
	"github.com/engineering-bank/backend/internal/keyvalue"
	"github.com/engineering-bank/backend/internal/middleware"
	"github.com/engineering-bank/backend/internal/securitydelivery"
	"github.com/engineering-bank/backend/internal/securityrepo"
	"github.com/engineering-bank/backend/internal/securityservice"
	"github.com/engineering-bank/backend/internal/sessiondelivery"
	"github.com/engineering-bank/backend/internal/sessionrepo"
	"github.com/engineering-bank/backend/internal/sessionservice"
	"github.com/engineering-bank/backend/internal/transactionrepo"
	"github.com/engineering-bank/backend/internal/transferdelivery"
	"github.com/engineering-bank/backend/internal/transferservice"
	"github.com/engineering-bank/backend/pkg/configpkg"
)

// Server holds the key-value store, handlers router and configuration.
type Server struct {
	Store  *keyvalue.Store
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(store *keyvalue.Store, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	accountRepo := accountrepo.NewRepoKV(store)
	sessionRepo := sessionrepo.NewRepoKV(store)
	securityRepo := securityrepo.NewRepoKV(store)
	transactionRepo := transactionrepo.NewRepoKV(store)

	securityService := securityservice.New(securityRepo)
	accountService := accountservice.New(accountRepo, securityService, config.AuthLatency)
	sessionService := sessionservice.New(sessionRepo, accountService, securityService, config.AuthLatency)
	transferService := transferservice.New(transactionRepo, accountService, sessionService, securityService, config.TransferLatency)

	accountHandler := accountdelivery.NewHandler(accountService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)
	securityHandler := securitydelivery.NewHandler(securityService, sessionService)
	transferHandler := transferdelivery.NewHandler(transferService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/accounts", accountHandler.Create)
	engine.POST("/sessions", sessionHandler.Login)
	engine.GET("/sessions", sessionHandler.Current)
	engine.DELETE("/sessions", sessionHandler.Logout)

	authRoutes := engine.Group("/").Use(middleware.SessionGuard(sessionService))

	authRoutes.POST("/transfers", transferHandler.Create)
	authRoutes.GET("/transactions", transferHandler.History)

	authRoutes.GET("/security/events", securityHandler.List)
	authRoutes.POST("/security/protocol", securityHandler.ActivateProtocol)
	authRoutes.POST("/security/threats", securityHandler.SimulateThreat)

	server := &Server{
		Store:  store,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
