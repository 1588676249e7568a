package main

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DatabaseService struct {
	db *gorm.DB
}

// NewDatabaseService opens the store and runs migrations.
func NewDatabaseService(dbPath string) (*DatabaseService, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Silent to reduce log noise
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	service := &DatabaseService{db: db}

	if err := service.runMigrations(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return service, nil
}

func (s *DatabaseService) runMigrations() error {
	return s.db.AutoMigrate(&UserModel{}, &TweetModel{}, &CommentModel{})
}

// Tweet related methods

// tweetQuery is the shared base for every tweet listing: owner and
// comment authors expanded, newest first.
func (s *DatabaseService) tweetQuery() *gorm.DB {
	return s.db.Model(&TweetModel{}).
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Comments.User").
		Order("created_at DESC")
}

// ListTweets returns one pagination window of all tweets.
func (s *DatabaseService) ListTweets(page, limit int) ([]TweetModel, error) {
	var tweets []TweetModel
	err := s.tweetQuery().
		Limit(limit).
		Offset(Offset(page, limit)).
		Find(&tweets).Error
	return tweets, err
}

// SearchTweets filters by case-insensitive substring match on content.
func (s *DatabaseService) SearchTweets(q string, page, limit int) ([]TweetModel, error) {
	var tweets []TweetModel
	err := s.tweetQuery().
		Where("LOWER(content) LIKE ?", "%"+strings.ToLower(q)+"%").
		Limit(limit).
		Offset(Offset(page, limit)).
		Find(&tweets).Error
	return tweets, err
}

// ListTweetsByUser returns one window of a single user's tweets.
func (s *DatabaseService) ListTweetsByUser(userID string, page, limit int) ([]TweetModel, error) {
	var tweets []TweetModel
	err := s.tweetQuery().
		Where("user_id = ?", userID).
		Limit(limit).
		Offset(Offset(page, limit)).
		Find(&tweets).Error
	return tweets, err
}

// GetTweet retrieves a tweet with its references expanded. Returns
// gorm.ErrRecordNotFound when no such tweet exists.
func (s *DatabaseService) GetTweet(id string) (*TweetModel, error) {
	var tweet TweetModel
	err := s.tweetQuery().Where("id = ?", id).First(&tweet).Error
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

// TweetExists checks if a tweet exists by id.
func (s *DatabaseService) TweetExists(id string) (bool, error) {
	var count int64
	err := s.db.Model(&TweetModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// TweetCount counts the entire collection. Listings use this total even
// when a filter is applied; historical behavior, preserved.
func (s *DatabaseService) TweetCount() (int64, error) {
	var count int64
	err := s.db.Model(&TweetModel{}).Count(&count).Error
	return count, err
}

func (s *DatabaseService) CreateTweet(tweet *TweetModel) error {
	return s.db.Create(tweet).Error
}

// DeleteTweetOwnedBy removes a tweet only when both id and owner match,
// together with its comments. Reports whether a tweet was removed.
func (s *DatabaseService) DeleteTweetOwnedBy(tweetID, userID string) (bool, error) {
	var deleted bool
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND user_id = ?", tweetID, userID).Delete(&TweetModel{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected > 0
		if !deleted {
			return nil
		}
		return tx.Where("tweet_id = ?", tweetID).Delete(&CommentModel{}).Error
	})
	return deleted, err
}

// IncrementLikes applies the signed like counter change atomically in
// the store. A missing tweet id matches zero rows and is not an error,
// matching the original update semantics. There is no floor at zero.
func (s *DatabaseService) IncrementLikes(tweetID string, delta int) error {
	return s.db.Model(&TweetModel{}).
		Where("id = ?", tweetID).
		UpdateColumn("likes", gorm.Expr("likes + ?", delta)).Error
}

// Comment related methods

// AddComment appends a comment to a tweet's sequence. Each comment gets
// a fresh id before insertion, so the insert can never collide with an
// existing row.
func (s *DatabaseService) AddComment(comment *CommentModel) error {
	return s.db.Create(comment).Error
}

// RemoveComment deletes the comment matching both the comment id and its
// parent tweet id. Reports whether a comment was removed.
func (s *DatabaseService) RemoveComment(tweetID, commentID string) (bool, error) {
	result := s.db.Where("id = ? AND tweet_id = ?", commentID, tweetID).Delete(&CommentModel{})
	return result.RowsAffected > 0, result.Error
}

// TweetOwnedBy reports whether a tweet with this id is owned by this
// user. Nonexistent ids are simply not owned.
func (s *DatabaseService) TweetOwnedBy(tweetID, userID string) (bool, error) {
	var count int64
	err := s.db.Model(&TweetModel{}).
		Where("id = ? AND user_id = ?", tweetID, userID).
		Count(&count).Error
	return count > 0, err
}

// CommentOwnedBy reports whether any tweet's comment sequence contains a
// comment with this id authored by this user. The search is across all
// comments, not scoped to one parent tweet.
func (s *DatabaseService) CommentOwnedBy(commentID, userID string) (bool, error) {
	var count int64
	err := s.db.Model(&CommentModel{}).
		Where("id = ? AND user_id = ?", commentID, userID).
		Count(&count).Error
	return count > 0, err
}

// User related methods

// ListUsers returns one window of active users, newest first.
func (s *DatabaseService) ListUsers(page, limit int) ([]UserModel, error) {
	var users []UserModel
	err := s.db.Model(&UserModel{}).
		Where("active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Offset(Offset(page, limit)).
		Find(&users).Error
	return users, err
}

// UserCount counts all users, active or not, mirroring the collection
// count the listing total has always reported.
func (s *DatabaseService) UserCount() (int64, error) {
	var count int64
	err := s.db.Model(&UserModel{}).Count(&count).Error
	return count, err
}

// UserExists checks whether a user with this username or email is
// already registered.
func (s *DatabaseService) UserExists(username, email string) (bool, error) {
	var count int64
	err := s.db.Model(&UserModel{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (s *DatabaseService) CreateUser(user *UserModel) error {
	return s.db.Create(user).Error
}

func (s *DatabaseService) GetUserByID(id string) (*UserModel, error) {
	var user UserModel
	err := s.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *DatabaseService) GetUserByUsername(username string) (*UserModel, error) {
	var user UserModel
	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser sets the mutable fields of a user. Username is not among
// them: the original API accepted it but never wrote it, and that
// behavior is kept.
func (s *DatabaseService) UpdateUser(id, name, email, password string) error {
	return s.db.Model(&UserModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"name":     name,
			"email":    email,
			"password": password,
		}).Error
}

// DeleteUser removes a user by id. Reports whether a user was removed.
func (s *DatabaseService) DeleteUser(id string) (bool, error) {
	result := s.db.Where("id = ?", id).Delete(&UserModel{})
	return result.RowsAffected > 0, result.Error
}

// IsNotFound reports whether an error is the store's missing-record
// signal.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func (s *DatabaseService) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
