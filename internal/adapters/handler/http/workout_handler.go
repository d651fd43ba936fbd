package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lequangminh/fitstreak/internal/adapters/handler/http/middleware"
	"github.com/lequangminh/fitstreak/internal/core/domain"
	"github.com/lequangminh/fitstreak/internal/core/services"
)

type WorkoutHandler struct {
	svc *services.WorkoutService
}

func NewWorkoutHandler(svc *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{svc: svc}
}

func (h *WorkoutHandler) RegisterRoutes(r *gin.RouterGroup) {
	workoutGroup := r.Group("/workout")
	{
		workoutGroup.GET("/today", h.Today)
		workoutGroup.POST("/complete", h.Complete)
		workoutGroup.GET("/calendar", h.Calendar)
	}
}

func (h *WorkoutHandler) Today(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	today, err := h.svc.Today(c.Request.Context(), userID, domain.Today())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load today's workout"})
		return
	}

	c.JSON(http.StatusOK, today)
}

func (h *WorkoutHandler) Complete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	_, err := h.svc.Complete(c.Request.Context(), userID, domain.Today())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyCompleted):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": "routine already completed for this day"})
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "user not found"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to record completion"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *WorkoutHandler) Calendar(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	month := c.Query("month")
	if month != "" {
		if _, err := domain.ParseDay(month + "-01"); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month format, expected YYYY-MM"})
			return
		}
	}

	days, err := h.svc.Calendar(c.Request.Context(), userID, month)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load calendar"})
		return
	}

	c.JSON(http.StatusOK, days)
}
