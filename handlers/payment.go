package handlers

import (
	"errors"
	"net/http"

	"labourmandi/services/payment"
	walletSvc "labourmandi/services/wallet"
	"labourmandi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler bridges the payment gateway to the wallet: it creates
// gateway orders and credits the wallet once a payment is verified.
type PaymentHandler struct {
	Gateway *payment.Service
	Wallet  walletSvc.WalletService
}

func NewPaymentHandler(gateway *payment.Service, wallet walletSvc.WalletService) *PaymentHandler {
	return &PaymentHandler{Gateway: gateway, Wallet: wallet}
}

// CreateOrderHandler registers a recharge order with the gateway.
func (h *PaymentHandler) CreateOrderHandler(c *gin.Context) {
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

	order, err := h.Gateway.CreateOrder(c.Request.Context(), req.Amount, "Wallet recharge for "+usr.Phone)
	if err != nil {
		if errors.Is(err, payment.ErrAmountTooSmall) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		getLogger(c).Error("Order creation failed", zap.String("userID", usr.ID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orderId":  order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
		"keyId":    h.Gateway.KeyID,
	})
}

// VerifyHandler checks the gateway callback signature and, when valid,
// credits the paid amount to the caller's wallet.
func (h *PaymentHandler) VerifyHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		OrderID   string `json:"orderId" binding:"required"`
		PaymentID string `json:"paymentId" binding:"required"`
		Signature string `json:"signature" binding:"required"`
		Amount    int    `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if !h.Gateway.VerifySignature(req.OrderID, req.PaymentID, req.Signature) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment verification failed"})
		return
	}

	balance, err := h.Wallet.Recharge(usr.ID, req.Amount)
	if err != nil {
		getLogger(c).Error("Wallet credit after payment failed",
			zap.String("userID", usr.ID.String()), zap.String("orderID", req.OrderID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment verified but wallet credit failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "newBalance": balance})
}
