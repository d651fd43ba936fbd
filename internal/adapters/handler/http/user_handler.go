package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lequangminh/fitstreak/internal/adapters/handler/http/middleware"
	"github.com/lequangminh/fitstreak/internal/core/domain"
	"github.com/lequangminh/fitstreak/internal/core/services"
)

type UserHandler struct {
	stats *services.StatsService
}

func NewUserHandler(stats *services.StatsService) *UserHandler {
	return &UserHandler{stats: stats}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	userGroup := r.Group("/user")
	{
		userGroup.GET("/me", h.Me)
	}
}

func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.stats.Profile(c.Request.Context(), userID, domain.Today())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
