package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

type UsersHandler struct {
	databaseService     *DatabaseService
	authService         *AuthService
	notificationService *NotificationService
}

func NewUsersHandler(databaseService *DatabaseService, authService *AuthService, notificationService *NotificationService) *UsersHandler {
	return &UsersHandler{
		databaseService:     databaseService,
		authService:         authService,
		notificationService: notificationService,
	}
}

// GET /users
func (h *UsersHandler) List(c *gin.Context) {
	page, limit := ParsePageLimit(c.Query("page"), c.Query("limit"))

	users, err := h.databaseService.ListUsers(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	total, err := h.databaseService.UserCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	p := NewUserPagination(total, page, limit)
	c.JSON(http.StatusOK, ListResponse{
		HasMore:     p.HasMore,
		TotalPages:  p.TotalPages,
		Total:       p.Total,
		Data:        NewUserListResponse(users),
		CurrentPage: p.CurrentPage,
	})
}

// POST /users
func (h *UsersHandler) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": MSG_INVALID_DATA})
		return
	}

	exists, err := h.databaseService.UserExists(req.Username, req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"message": MSG_USER_EXISTS})
		return
	}

	hash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	now := time.Now()
	user := UserModel{
		ID:        uuid.New().String(),
		Username:  req.Username,
		Email:     req.Email,
		Name:      req.Name,
		Password:  hash,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.databaseService.CreateUser(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	// Fire and forget: the response never waits on the notification.
	go h.notificationService.NotifyNewAccount(user.Username, user.Email)

	c.JSON(http.StatusOK, user)
}

// GET /users/:id — the original API resolved this path parameter as a
// username, not a user id. Preserved.
func (h *UsersHandler) Find(c *gin.Context) {
	user, err := h.databaseService.GetUserByUsername(c.Param("id"))
	if err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": MSG_USER_NOT_EXISTS})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"username": user.Username,
		"email":    user.Email,
		"name":     user.Name,
		"id":       user.ID,
	}})
}

// GET /users/:id/tweets — the parameter is a username here as well.
func (h *UsersHandler) TweetsOfUser(c *gin.Context) {
	username := c.Param("id")
	page, limit := ParsePageLimit(c.Query("page"), c.Query("limit"))

	user, err := h.databaseService.GetUserByUsername(username)
	if err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("username %s not found", username)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	tweets, err := h.databaseService.ListTweetsByUser(user.ID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	total, err := h.databaseService.TweetCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	p := NewTweetPagination(total, page, limit)
	c.JSON(http.StatusOK, ListResponse{
		HasMore:     p.HasMore,
		TotalPages:  p.TotalPages,
		Total:       p.Total,
		Data:        NewTweetResponses(tweets),
		CurrentPage: p.CurrentPage,
	})
}

// POST /users/login
func (h *UsersHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": MSG_INVALID_DATA})
		return
	}

	user, err := h.databaseService.GetUserByUsername(req.Username)
	if err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": MSG_USER_NOT_EXISTS})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if !h.authService.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": MSG_USER_NOT_EXISTS})
		return
	}

	token, err := h.authService.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.SetCookie(TOKEN_COOKIE, token, int(TOKEN_VALIDITY.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"username": user.Username,
			"name":     user.Name,
			"token":    token,
		},
		"message": MSG_OK,
	})
}

// GET /users/logout
func (h *UsersHandler) Logout(c *gin.Context) {
	c.SetCookie(TOKEN_COOKIE, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": MSG_OK})
}

// PUT /users/:id — all four fields must be present; absence of any one
// fails the whole request. Username is accepted but never written.
func (h *UsersHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UserRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": MSG_INVALID_DATA})
		return
	}

	if _, err := h.databaseService.GetUserByID(id); err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("%s %s", MSG_USER_NOT_EXISTS, id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	hash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	if err := h.databaseService.UpdateUser(id, req.Name, req.Email, hash); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": fmt.Sprintf("%s %s", MSG_USER_ON_UPDATE, id)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": MSG_USER_UPDATED})
}

// DELETE /users — self-only, enforced by UserAuthorization.
func (h *UsersHandler) Remove(c *gin.Context) {
	var req DeleteUserRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": MSG_INVALID_DATA})
		return
	}

	deleted, err := h.databaseService.DeleteUser(req.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": MSG_USER_ON_DELETE})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": MSG_USER_NOT_EXISTS})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": MSG_USER_DELETED, "id": req.ID})
}
