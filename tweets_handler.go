package main

import (
	"log"
	"net/http"
	"time"

	"github.com/dan3143/api-twitter/twitterapi"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

type TweetsHandler struct {
	databaseService *DatabaseService
	twitterAPI      *twitterapi.TwitterAPIService
}

func NewTweetsHandler(databaseService *DatabaseService, twitterAPI *twitterapi.TwitterAPIService) *TweetsHandler {
	return &TweetsHandler{
		databaseService: databaseService,
		twitterAPI:      twitterAPI,
	}
}

// GET /tweets
func (h *TweetsHandler) List(c *gin.Context) {
	page, limit := ParsePageLimit(c.Query("page"), c.Query("limit"))

	tweets, err := h.databaseService.ListTweets(page, limit)
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

// GET /tweets/search
func (h *TweetsHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusNotFound, gin.H{"message": MSG_NO_SEARCH_QUERY})
		return
	}

	page, limit := ParsePageLimit(c.Query("page"), c.Query("limit"))

	tweets, err := h.databaseService.SearchTweets(q, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	// Total deliberately counts the whole collection, not the matches.
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

// GET /tweets/:id
func (h *TweetsHandler) Find(c *gin.Context) {
	tweet, err := h.databaseService.GetTweet(c.Param("id"))
	if err != nil {
		if IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": MSG_TWEET_NOT_EXISTS})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": NewTweetResponse(*tweet)})
}

// POST /tweets
func (h *TweetsHandler) Create(c *gin.Context) {
	var req CreateTweetRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": MSG_INVALID_DATA})
		return
	}

	tweet := TweetModel{
		ID:        uuid.New().String(),
		Content:   req.Content,
		UserID:    c.GetString(CONTEXT_USER_ID),
		CreatedAt: time.Now(),
	}
	if err := h.databaseService.CreateTweet(&tweet); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": MSG_TWEET_ON_CREATE})
		return
	}

	// Re-read to expand the owner reference in the response.
	created, err := h.databaseService.GetTweet(tweet.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": MSG_TWEET_ON_CREATE})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": NewTweetResponse(*created)})
}

// DELETE /tweets — ownership already verified by TweetAuthorization, but
// the delete still matches on both id and owner so a race with a
// concurrent mutation can only under-delete, never cross-delete.
func (h *TweetsHandler) Destroy(c *gin.Context) {
	var req DeleteTweetRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": MSG_INVALID_DATA})
		return
	}

	deleted, err := h.databaseService.DeleteTweetOwnedBy(req.TweetID, c.GetString(CONTEXT_USER_ID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": MSG_TWEET_ON_DELETE})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"message": MSG_TWEET_NOT_EXISTS})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": MSG_TWEET_DELETED, "id": req.TweetID})
}

// POST /tweets/comments
func (h *TweetsHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": MSG_INVALID_DATA})
		return
	}

	exists, err := h.databaseService.TweetExists(req.TweetID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": MSG_TWEET_NOT_UPDATED})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"message": MSG_TWEET_NOT_EXISTS})
		return
	}

	comment := CommentModel{
		ID:        uuid.New().String(),
		TweetID:   req.TweetID,
		UserID:    c.GetString(CONTEXT_USER_ID),
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}
	if err := h.databaseService.AddComment(&comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": MSG_TWEET_NOT_UPDATED})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": MSG_OK})
}

// DELETE /tweets/comments — authorship verified by CommentAuthorization.
func (h *TweetsHandler) DeleteComment(c *gin.Context) {
	var req DeleteCommentRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": MSG_INVALID_DATA})
		return
	}

	removed, err := h.databaseService.RemoveComment(req.TweetID, req.CommentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": MSG_COMMENT_ON_DELETE})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"message": MSG_COMMENT_NOT_EXISTS})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": MSG_COMMENT_DELETED, "id": req.CommentID})
}

// POST /tweets/likes — the counter moves by +1 for like == 1 and -1 for
// everything else, with no floor. Repeated unlikes go negative; known
// behavior, left as is.
func (h *TweetsHandler) Likes(c *gin.Context) {
	var req LikeRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": MSG_INVALID_DATA})
		return
	}

	delta := -1
	if req.Like == 1 {
		delta = 1
	}

	if err := h.databaseService.IncrementLikes(req.TweetID, delta); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": MSG_TWEET_NOT_UPDATED})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": MSG_OK})
}

// GET /tweets/external/:username
func (h *TweetsHandler) ExternalByUsername(c *gin.Context) {
	username := c.Param("username")

	response, err := h.twitterAPI.GetUserLastTweets(twitterapi.UserLastTweetsRequest{UserName: username})
	if err != nil {
		log.Printf("External feed lookup for %s failed: %v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": MSG_EXTERNAL_FEED})
		return
	}

	tweets := make([]ExternalTweetResponse, 0, len(response.Tweets))
	for _, tweet := range response.Tweets {
		tweets = append(tweets, ExternalTweetResponse{
			Text:      tweet.Text,
			CreatedAt: tweet.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, tweets)
}
