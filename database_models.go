package main

import (
	"time"
)

// User account. Password holds the bcrypt hash, never the plain text.
type UserModel struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	Username  string    `gorm:"column:username;uniqueIndex" json:"username"`
	Email     string    `gorm:"column:email;uniqueIndex" json:"email"`
	Name      string    `gorm:"column:name" json:"name"`
	Password  string    `gorm:"column:password" json:"-"`
	Active    bool      `gorm:"column:active" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (UserModel) TableName() string {
	return "users"
}

// Tweet. UserID is the owning user and is never changed after creation.
// Likes has no floor: repeated unlikes drive it negative, matching the
// store-side signed increment.
type TweetModel struct {
	ID        string         `gorm:"primaryKey;column:id" json:"id"`
	Content   string         `gorm:"column:content" json:"content"`
	Likes     int            `gorm:"column:likes;default:0" json:"likes"`
	UserID    string         `gorm:"column:user_id;index" json:"userId"`
	User      *UserModel     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Comments  []CommentModel `gorm:"foreignKey:TweetID" json:"comments"`
	CreatedAt time.Time      `gorm:"column:created_at;index" json:"createdAt"`
}

func (TweetModel) TableName() string {
	return "tweets"
}

// Comment on a tweet. Comments live in their own table keyed by tweet_id,
// which doubles as the comment-id -> parent-tweet index used by the
// ownership lookup. UserID is the comment author, independent of the
// parent tweet's owner.
type CommentModel struct {
	ID        string     `gorm:"primaryKey;column:id" json:"id"`
	TweetID   string     `gorm:"column:tweet_id;index" json:"tweetId"`
	UserID    string     `gorm:"column:user_id;index" json:"userId"`
	Comment   string     `gorm:"column:comment" json:"comment"`
	User      *UserModel `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at" json:"createdAt"`
}

func (CommentModel) TableName() string {
	return "comments"
}
