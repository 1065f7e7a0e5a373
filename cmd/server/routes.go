package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"freightflow/config"
	"freightflow/internal/database"
	"freightflow/internal/handlers"
	"freightflow/internal/middleware"
	"freightflow/internal/store"
)

func main() {
	cfg := config.LoadConfig()

	db, err := database.NewConnection(cfg.DB.DSN())
	if err != nil {
		// Reads degrade to empty results without a database; writes will
		// surface the failure to callers.
		log.Printf("Warning: database unavailable, running degraded: %v", err)
		db = nil
	} else if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	} else if err := database.SeedAccessorials(db); err != nil {
		log.Fatalf("Failed to seed accessorials: %v", err)
	}

	redisClient := config.NewRedisClient(cfg.Redis)

	dataStore := store.New(db, cfg.Auth.OwnerOpenID)

	authHandler := handlers.NewAuthHTTPHandler(dataStore, cfg.Auth)
	quoteHandler := handlers.NewQuoteHTTPHandler(dataStore)
	dispatchHandler := handlers.NewDispatchHTTPHandler(dataStore)
	carrierHandler := handlers.NewCarrierHTTPHandler(dataStore, redisClient)
	companyHandler := handlers.NewCompanyHTTPHandler(dataStore)
	accessorialHandler := handlers.NewAccessorialHTTPHandler(dataStore, redisClient)
	systemHandler := handlers.NewSystemHTTPHandler(dataStore, redisClient)

	r := gin.Default()

	r.Use(middleware.CORS())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit(cfg.Server.RateLimit))

	// --- Public API Group (reads + auth) ---
	public := r.Group("/api/v1")
	public.Use(middleware.OptionalSession(cfg.Auth))
	{
		auth := public.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", authHandler.Me)
			auth.POST("/logout", authHandler.Logout)
		}

		public.GET("/quotes", quoteHandler.ListQuotes)
		public.GET("/quotes/:id", quoteHandler.GetQuote)

		public.GET("/dispatches", dispatchHandler.ListDispatches)
		public.GET("/dispatches/:id", dispatchHandler.GetDispatch)

		public.GET("/carriers", carrierHandler.ListCarriers)
		public.GET("/carriers/:id", carrierHandler.GetCarrier)
		public.GET("/carriers/:id/rates", carrierHandler.GetRates)
		public.GET("/carriers/:id/drivers", carrierHandler.ListDrivers)
		public.GET("/carriers/:id/dispatches", dispatchHandler.ListCarrierDispatches)
		public.GET("/drivers/:id", carrierHandler.GetDriver)

		public.GET("/companies", companyHandler.ListCompanies)
		public.GET("/companies/:id", companyHandler.GetCompany)
		public.GET("/companies/:id/carriers", companyHandler.ListCompanyCarriers)
		public.GET("/companies/:id/quotes", companyHandler.ListCompanyQuotes)

		public.GET("/accessorials", accessorialHandler.ListAccessorials)
		public.GET("/accessorials/:code", accessorialHandler.GetAccessorial)
	}

	// --- Protected API Group (writes require a session) ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.SessionAuth(cfg.Auth))
	{
		protected.POST("/quotes", quoteHandler.CreateQuote)
		protected.PUT("/quotes/:id", quoteHandler.UpdateQuote)
		protected.PUT("/quotes/:id/status", quoteHandler.UpdateQuoteStatus)

		protected.POST("/dispatches", dispatchHandler.CreateDispatch)
		protected.PUT("/dispatches/:id/status", dispatchHandler.UpdateDispatchStatus)

		protected.POST("/carriers", carrierHandler.CreateCarrier)
		protected.PUT("/carriers/:id", carrierHandler.UpdateCarrier)
		protected.POST("/carriers/:id/rates", carrierHandler.CreateRateCard)
		protected.POST("/carriers/:id/drivers", carrierHandler.CreateDriver)

		protected.POST("/companies", companyHandler.CreateCompany)
		protected.PUT("/companies/:id", companyHandler.UpdateCompany)

		protected.POST("/accessorials", accessorialHandler.CreateAccessorial)

		system := protected.Group("/system")
		{
			system.GET("/ailogs", systemHandler.ListAILogs)
			system.POST("/ailogs", systemHandler.RecordAILog)
		}
	}

	r.GET("/health", systemHandler.Health)

	port := ":" + cfg.Server.Port
	log.Printf("Starting server on port %s", port)
	if err := r.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
