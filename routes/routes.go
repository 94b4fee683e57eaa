package routes

import (
	"net/http"
	"time"

	"labourmandi/handlers"
	"labourmandi/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup, sign-in and sign-out endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignupHandler)
		api.POST("/signin", hb.SignInHandler)
		api.POST("/verify-otp", hb.VerifyOTPHandler)
		api.POST("/google", hb.GoogleSignInHandler)

		// Sign-out needs the session that is being dropped.
		api.POST("/signout", middleware.SessionAuthMiddleware(hb.Sessions, hb.UserRepo), hb.SignOutHandler)
	}
}

// RegisterUserRoutes registers the authenticated profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.SessionAuthMiddleware(hb.Sessions, hb.UserRepo))
		api.GET("/me", hb.MeHandler)
		api.PATCH("/profile", hb.UpdateProfileHandler)
	}
}

// RegisterTechnicianRoutes registers the public technician directory.
func RegisterTechnicianRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/technicians")
	{
		api.GET("", hb.ListTechniciansHandler)
		api.GET("/:id", hb.GetTechnicianHandler)
	}
	r.GET("/api/categories", hb.CategoriesHandler)
}

// RegisterJobRoutes registers job listing, posting and bid endpoints.
func RegisterJobRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/jobs")
	{
		api.GET("", hb.ListJobsHandler)
		api.GET("/:id", hb.GetJobHandler)
		api.GET("/:id/bids", hb.ListJobBidsHandler)

		protected := api.Group("")
		protected.Use(middleware.SessionAuthMiddleware(hb.Sessions, hb.UserRepo))
		protected.POST("", hb.CreateJobHandler)
		protected.PATCH("/:id/status", hb.UpdateJobStatusHandler)
	}

	bids := r.Group("/api/bids")
	{
		bids.Use(middleware.SessionAuthMiddleware(hb.Sessions, hb.UserRepo))
		bids.POST("", hb.PlaceBidHandler)
		bids.PATCH("/:id/accept", hb.AcceptBidHandler)
	}
}

// RegisterWalletRoutes registers wallet and payment endpoints.
func RegisterWalletRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	wallet := r.Group("/api/wallet")
	{
		wallet.Use(middleware.SessionAuthMiddleware(hb.Sessions, hb.UserRepo))
		wallet.GET("/balance", hb.WalletBalanceHandler)
		wallet.GET("/transactions", hb.WalletTransactionsHandler)
		wallet.POST("/recharge", hb.WalletRechargeHandler)
		wallet.POST("/unlock-contact", hb.UnlockContactHandler)
	}

	payment := r.Group("/api/payment")
	{
		payment.Use(middleware.SessionAuthMiddleware(hb.Sessions, hb.UserRepo))
		payment.POST("/order", hb.CreateOrderHandler)
		payment.POST("/verify", hb.VerifyPaymentHandler)
	}
}

// RegisterSeedRoute registers the demo data seeder.
func RegisterSeedRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/seed/demo", hb.SeedDemoHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Labour Mandi API"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterTechnicianRoutes(r, hb)
	RegisterJobRoutes(r, hb)
	RegisterWalletRoutes(r, hb)
	RegisterSeedRoute(r, hb)
	RegisterHealthRoute(r)
}
