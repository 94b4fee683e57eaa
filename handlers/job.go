package handlers

import (
	"errors"
	"net/http"

	"labourmandi/models"
	jobSvc "labourmandi/services/job"
	"labourmandi/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// JobHandler exposes the job and bid lifecycle endpoints.
type JobHandler struct {
	Svc jobSvc.JobService
}

func NewJobHandler(svc jobSvc.JobService) *JobHandler {
	return &JobHandler{Svc: svc}
}

// ListHandler returns every job newest first, with customer and bids joined.
func (h *JobHandler) ListHandler(c *gin.Context) {
	jobs, err := h.Svc.ListJobs()
	if err != nil {
		getLogger(c).Error("Job listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetHandler returns one job with customer and bids joined.
func (h *JobHandler) GetHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	detail, err := h.Svc.GetJob(id)
	if err != nil {
		if errors.Is(err, jobSvc.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		getLogger(c).Error("Job lookup failed", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch job"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateHandler posts a new job for the authenticated customer.
func (h *JobHandler) CreateHandler(c *gin.Context) {
	logger := getLogger(c)

	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req jobSvc.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	j, err := h.Svc.CreateJob(usr.ID, req)
	if err != nil {
		logger.Error("Job creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}
	c.JSON(http.StatusOK, j)
}

// UpdateStatusHandler moves a job to an explicit lifecycle state.
func (h *JobHandler) UpdateStatusHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	var req struct {
		Status models.JobStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	j, err := h.Svc.UpdateStatus(usr.ID, id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, jobSvc.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		case errors.Is(err, jobSvc.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		case errors.Is(err, jobSvc.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the job owner can update its status"})
		default:
			getLogger(c).Error("Job status update failed", zap.String("id", id.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		}
		return
	}
	c.JSON(http.StatusOK, j)
}

// ListBidsHandler returns a job's bids with the bidding technicians joined.
func (h *JobHandler) ListBidsHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job id"})
		return
	}

	bids, err := h.Svc.ListBids(id)
	if err != nil {
		getLogger(c).Error("Bid listing failed", zap.String("jobID", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bids"})
		return
	}
	c.JSON(http.StatusOK, bids)
}

// PlaceBidHandler submits one or more bid options for a job.
func (h *JobHandler) PlaceBidHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req jobSvc.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	bids, err := h.Svc.PlaceBids(usr.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, jobSvc.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		case errors.Is(err, jobSvc.ErrJobClosed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Job is no longer open for bids"})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, bids)
}

// AcceptBidHandler accepts a bid on behalf of the job's customer.
func (h *JobHandler) AcceptBidHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bid id"})
		return
	}

	if err := h.Svc.AcceptBid(usr.ID, id); err != nil {
		switch {
		case errors.Is(err, jobSvc.ErrBidNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Bid not found"})
		case errors.Is(err, jobSvc.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		case errors.Is(err, jobSvc.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Only the job owner can accept bids"})
		default:
			getLogger(c).Error("Bid acceptance failed", zap.String("bidID", id.String()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept bid"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
