package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// StatusHandler serves the operational snapshot: store counts plus
// today's request and error volume from the logging database.
type StatusHandler struct {
	databaseService *DatabaseService
	loggingService  *LoggingService
}

func NewStatusHandler(databaseService *DatabaseService, loggingService *LoggingService) *StatusHandler {
	return &StatusHandler{
		databaseService: databaseService,
		loggingService:  loggingService,
	}
}

// GET /status
func (h *StatusHandler) Status(c *gin.Context) {
	tweetCount, err := h.databaseService.TweetCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	userCount, err := h.databaseService.UserCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	now := time.Now()
	requestsToday, err := h.loggingService.GetRequestCountByDay(now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	errorsToday, err := h.loggingService.GetErrorCountByDay(now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"tweets":         tweetCount,
		"users":          userCount,
		"requests_today": requestsToday,
		"errors_today":   errorsToday,
	})
}
