package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"labourmandi/config"
	"labourmandi/database"
	bidRepoPkg "labourmandi/database/repository/bid"
	jobRepoPkg "labourmandi/database/repository/job"
	otpRepoPkg "labourmandi/database/repository/otp"
	technicianRepoPkg "labourmandi/database/repository/technician"
	userRepoPkg "labourmandi/database/repository/user"
	walletRepoPkg "labourmandi/database/repository/wallet"
	"labourmandi/handlers"
	"labourmandi/middleware"
	"labourmandi/routes"
	authSvc "labourmandi/services/auth"
	jobSvc "labourmandi/services/job"
	"labourmandi/services/payment"
	seedSvc "labourmandi/services/seed"
	technicianSvc "labourmandi/services/technician"
	userSvc "labourmandi/services/user"
	walletSvc "labourmandi/services/wallet"
	"labourmandi/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionStore()
	sessions := utils.GetSessionStore()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewGormUserRepo()
	technicianRepo := technicianRepoPkg.NewGormTechnicianRepo()
	jobRepo := jobRepoPkg.NewGormJobRepo()
	bidRepo := bidRepoPkg.NewGormBidRepo()
	walletRepo := walletRepoPkg.NewGormWalletRepo()
	otpRepo := otpRepoPkg.NewGormOtpRepo()

	// services.
	authService := &authSvc.DefaultAuthService{
		Users:       userRepo,
		Technicians: technicianRepo,
		Otps:        otpRepo,
		Sessions:    sessions,
		Verifier:    authSvc.JWKSVerifier{},
		SignupBonus: config.AppConfig.SignupBonus,
		Audience:    config.AppConfig.GoogleClientID,
	}
	userService := &userSvc.DefaultUserService{Repo: userRepo}
	technicianService := &technicianSvc.DefaultTechnicianService{
		Users: userRepo,
		Repo:  technicianRepo,
	}
	jobService := &jobSvc.DefaultJobService{
		Jobs:               jobRepo,
		Bids:               bidRepo,
		Users:              userRepo,
		AllowClosedJobBids: config.AppConfig.AllowClosedJobBids,
	}
	walletService := &walletSvc.DefaultWalletService{
		Wallet:      walletRepo,
		Users:       userRepo,
		Technicians: technicianRepo,
		UnlockCost:  config.AppConfig.UnlockCost,
	}
	paymentService := payment.NewService(
		config.AppConfig.RazorpayKeyID,
		config.AppConfig.RazorpayKeySecret,
		logger,
	)
	seedService := &seedSvc.DefaultSeedService{
		Users:       userRepo,
		Technicians: technicianRepo,
		Jobs:        jobRepo,
		Bids:        bidRepo,
	}

	// handlers.
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	technicianHandler := handlers.NewTechnicianHandler(technicianService)
	jobHandler := handlers.NewJobHandler(jobService)
	walletHandler := handlers.NewWalletHandler(walletService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, walletService)
	seedHandler := handlers.NewSeedHandler(seedService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessions,
		UserRepo: userRepo,

		SignupHandler:       authHandler.SignupHandler,
		SignInHandler:       authHandler.SignInHandler,
		VerifyOTPHandler:    authHandler.VerifyOTPHandler,
		GoogleSignInHandler: authHandler.GoogleSignInHandler,
		SignOutHandler:      authHandler.SignOutHandler,

		MeHandler:            userHandler.MeHandler,
		UpdateProfileHandler: userHandler.UpdateProfileHandler,

		ListTechniciansHandler: technicianHandler.ListHandler,
		GetTechnicianHandler:   technicianHandler.GetHandler,
		CategoriesHandler:      technicianHandler.CategoriesHandler,

		ListJobsHandler:        jobHandler.ListHandler,
		GetJobHandler:          jobHandler.GetHandler,
		CreateJobHandler:       jobHandler.CreateHandler,
		UpdateJobStatusHandler: jobHandler.UpdateStatusHandler,
		ListJobBidsHandler:     jobHandler.ListBidsHandler,
		PlaceBidHandler:        jobHandler.PlaceBidHandler,
		AcceptBidHandler:       jobHandler.AcceptBidHandler,

		WalletBalanceHandler:      walletHandler.BalanceHandler,
		WalletTransactionsHandler: walletHandler.TransactionsHandler,
		WalletRechargeHandler:     walletHandler.RechargeHandler,
		UnlockContactHandler:      walletHandler.UnlockContactHandler,

		CreateOrderHandler:   paymentHandler.CreateOrderHandler,
		VerifyPaymentHandler: paymentHandler.VerifyHandler,

		SeedDemoHandler: seedHandler.SeedDemoHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
