package handlers

import (
	"errors"
	"net/http"

	walletSvc "labourmandi/services/wallet"
	"labourmandi/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WalletHandler exposes the wallet balance, ledger, recharge and
// contact-unlock endpoints.
type WalletHandler struct {
	Svc walletSvc.WalletService
}

func NewWalletHandler(svc walletSvc.WalletService) *WalletHandler {
	return &WalletHandler{Svc: svc}
}

// BalanceHandler returns the caller's current wallet balance.
func (h *WalletHandler) BalanceHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	balance, err := h.Svc.Balance(usr.ID)
	if err != nil {
		getLogger(c).Error("Balance lookup failed", zap.String("userID", usr.ID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch balance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// TransactionsHandler returns the caller's wallet ledger newest first.
func (h *WalletHandler) TransactionsHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txns, err := h.Svc.Transactions(usr.ID)
	if err != nil {
		getLogger(c).Error("Transaction listing failed", zap.String("userID", usr.ID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}
	c.JSON(http.StatusOK, txns)
}

// RechargeHandler credits the caller's wallet.
func (h *WalletHandler) RechargeHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		Amount int `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	balance, err := h.Svc.Recharge(usr.ID, req.Amount)
	if err != nil {
		if errors.Is(err, walletSvc.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be positive"})
			return
		}
		getLogger(c).Error("Recharge failed", zap.String("userID", usr.ID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recharge wallet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "newBalance": balance})
}

// UnlockContactHandler reveals a technician's WhatsApp number, charging the
// flat fee the first time only.
func (h *WalletHandler) UnlockContactHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		ContactID uuid.UUID `json:"contactId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	result, err := h.Svc.UnlockContact(usr.ID, req.ContactID)
	if err != nil {
		switch {
		case errors.Is(err, walletSvc.ErrContactNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Technician not found"})
		case errors.Is(err, walletSvc.ErrInsufficientBalance):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient wallet balance. Please recharge."})
		default:
			getLogger(c).Error("Contact unlock failed", zap.String("userID", usr.ID.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlock contact"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
