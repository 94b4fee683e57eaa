package handlers

import (
	userRepoPkg "labourmandi/database/repository/user"
	"labourmandi/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so routing can
// be wired from a single place. The session store and user repository ride
// along for the auth middleware.
type HandlerBundle struct {
	Sessions utils.SessionStore
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	SignupHandler       gin.HandlerFunc
	SignInHandler       gin.HandlerFunc
	VerifyOTPHandler    gin.HandlerFunc
	GoogleSignInHandler gin.HandlerFunc
	SignOutHandler      gin.HandlerFunc

	// User endpoints
	MeHandler            gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc

	// Technician endpoints
	ListTechniciansHandler gin.HandlerFunc
	GetTechnicianHandler   gin.HandlerFunc
	CategoriesHandler      gin.HandlerFunc

	// Job and bid endpoints
	ListJobsHandler        gin.HandlerFunc
	GetJobHandler          gin.HandlerFunc
	CreateJobHandler       gin.HandlerFunc
	UpdateJobStatusHandler gin.HandlerFunc
	ListJobBidsHandler     gin.HandlerFunc
	PlaceBidHandler        gin.HandlerFunc
	AcceptBidHandler       gin.HandlerFunc

	// Wallet endpoints
	WalletBalanceHandler      gin.HandlerFunc
	WalletTransactionsHandler gin.HandlerFunc
	WalletRechargeHandler     gin.HandlerFunc
	UnlockContactHandler      gin.HandlerFunc

	// Payment endpoints
	CreateOrderHandler   gin.HandlerFunc
	VerifyPaymentHandler gin.HandlerFunc

	// Seed endpoint
	SeedDemoHandler gin.HandlerFunc
}
