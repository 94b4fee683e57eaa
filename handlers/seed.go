package handlers

import (
	"net/http"

	seedSvc "labourmandi/services/seed"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SeedHandler loads the demo fixture set.
type SeedHandler struct {
	Svc seedSvc.SeedService
}

func NewSeedHandler(svc seedSvc.SeedService) *SeedHandler {
	return &SeedHandler{Svc: svc}
}

// SeedDemoHandler populates demo data. It is a no-op once any user exists.
func (h *SeedHandler) SeedDemoHandler(c *gin.Context) {
	seeded, err := h.Svc.SeedDemo()
	if err != nil {
		getLogger(c).Error("Demo seed failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed demo data"})
		return
	}
	if !seeded {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Data already exists, skipping seed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Demo data seeded successfully"})
}
