package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type Middleware struct {
	authService      *AuthService
	ownershipService *OwnershipService
	loggingService   *LoggingService
}

func NewMiddleware(authService *AuthService, ownershipService *OwnershipService, loggingService *LoggingService) *Middleware {
	return &Middleware{
		authService:      authService,
		ownershipService: ownershipService,
		loggingService:   loggingService,
	}
}

// RequestLogger records every handled request in the logging database.
func (m *Middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		err := m.loggingService.LogRequest(
			c.Request.Method,
			c.FullPath(),
			c.Writer.Status(),
			c.GetString(CONTEXT_USER_ID),
			c.ClientIP(),
			time.Since(start),
		)
		if err != nil {
			log.Printf("Failed to log request %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
	}
}

// Authenticator resolves the principal from the session cookie or a
// Bearer header and stores its user id in the request context. Requests
// without a valid token are rejected.
func (m *Middleware) Authenticator() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(TOKEN_COOKIE)
		if err != nil || token == "" {
			header := c.GetHeader("Authorization")
			token = strings.TrimPrefix(header, "Bearer ")
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": MSG_NOT_AUTHORIZED})
			return
		}

		userID, err := m.authService.UserIDFromToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": MSG_NOT_AUTHORIZED})
			return
		}

		c.Set(CONTEXT_USER_ID, userID)
		c.Next()
	}
}

// TweetAuthorization gates tweet deletion on ownership. A failed lookup
// is a server error, never a silent denial.
func (m *Middleware) TweetAuthorization() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeleteTweetRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": MSG_INVALID_DATA})
			return
		}

		owns, err := m.ownershipService.UserOwnsTweet(c.GetString(CONTEXT_USER_ID), req.TweetID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": MSG_TWEET_ON_DELETE})
			return
		}
		if !owns {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": MSG_ACCESS_DENIED})
			return
		}

		c.Next()
	}
}

// CommentAuthorization gates comment deletion on authorship of that
// specific comment. Owning the parent tweet grants nothing here.
func (m *Middleware) CommentAuthorization() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeleteCommentRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": MSG_INVALID_DATA})
			return
		}

		owns, err := m.ownershipService.UserOwnsComment(c.GetString(CONTEXT_USER_ID), req.CommentID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": MSG_COMMENT_ON_DELETE})
			return
		}
		if !owns {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": MSG_ACCESS_DENIED})
			return
		}

		c.Next()
	}
}

// UserAuthorization allows account mutation only for the account itself.
// The target is the path parameter for PUT /users/:id and the body id
// for DELETE /users.
func (m *Middleware) UserAuthorization() gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID := c.Param("id")
		if targetID == "" {
			var req DeleteUserRequest
			if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": MSG_INVALID_DATA})
				return
			}
			targetID = req.ID
		}

		if c.GetString(CONTEXT_USER_ID) != targetID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": MSG_ACCESS_DENIED})
			return
		}

		c.Next()
	}
}
