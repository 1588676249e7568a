package main

type CreateTweetRequest struct {
	Content string `json:"content" binding:"required"`
}

type DeleteTweetRequest struct {
	TweetID string `json:"tweetId" binding:"required"`
}

type CreateCommentRequest struct {
	TweetID string `json:"tweetId" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

type DeleteCommentRequest struct {
	TweetID   string `json:"tweetId" binding:"required"`
	CommentID string `json:"commentId" binding:"required"`
}

// Like carries the directional flag: 1 means like, anything else is
// treated as unlike. The original API never validated the flag beyond
// that, so neither do we.
type LikeRequest struct {
	TweetID string `json:"tweetId" binding:"required"`
	Like    int    `json:"like"`
}

// All four fields are mandatory both on registration and on update;
// partial updates are not supported.
type UserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type DeleteUserRequest struct {
	ID string `json:"id" binding:"required"`
}
