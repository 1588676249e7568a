package main

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DatabaseService {
	dbPath := filepath.Join(t.TempDir(), "test_database.db")

	db, err := NewDatabaseService(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func seedUser(t *testing.T, db *DatabaseService, id, username string) UserModel {
	user := UserModel{
		ID:        id,
		Username:  username,
		Email:     username + "@example.com",
		Name:      "User " + username,
		Password:  "hash",
		Active:    true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	require.NoError(t, db.CreateUser(&user))
	return user
}

func seedTweet(t *testing.T, db *DatabaseService, id, userID, content string, createdAt time.Time) TweetModel {
	tweet := TweetModel{
		ID:        id,
		Content:   content,
		UserID:    userID,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.CreateTweet(&tweet))
	return tweet
}

func TestDatabaseService_TweetOperations(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "user_1", "alice")

	t.Run("CreateTweet", func(t *testing.T) {
		seedTweet(t, db, "tweet_1", "user_1", "hello world", time.Now())
	})

	t.Run("TweetExists", func(t *testing.T) {
		exists, err := db.TweetExists("tweet_1")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = db.TweetExists("nonexistent_tweet")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("GetTweetExpandsOwner", func(t *testing.T) {
		tweet, err := db.GetTweet("tweet_1")
		require.NoError(t, err)
		assert.Equal(t, "hello world", tweet.Content)
		require.NotNil(t, tweet.User)
		assert.Equal(t, "alice", tweet.User.Username)
	})

	t.Run("GetTweetNotFound", func(t *testing.T) {
		_, err := db.GetTweet("nonexistent_tweet")
		assert.True(t, IsNotFound(err))
	})

	t.Run("DeleteTweetOwnedBy", func(t *testing.T) {
		deleted, err := db.DeleteTweetOwnedBy("tweet_1", "someone_else")
		assert.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = db.DeleteTweetOwnedBy("tweet_1", "user_1")
		assert.NoError(t, err)
		assert.True(t, deleted)

		exists, err := db.TweetExists("tweet_1")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestDatabaseService_Pagination(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "user_1", "alice")

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 25; i++ {
		seedTweet(t, db, fmt.Sprintf("tweet_%02d", i), "user_1",
			fmt.Sprintf("tweet number %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	t.Run("WindowLengthAtMostLimit", func(t *testing.T) {
		tweets, err := db.ListTweets(1, 10)
		require.NoError(t, err)
		assert.Len(t, tweets, 10)

		tweets, err = db.ListTweets(3, 10)
		require.NoError(t, err)
		assert.Len(t, tweets, 5)

		tweets, err = db.ListTweets(4, 10)
		require.NoError(t, err)
		assert.Empty(t, tweets)
	})

	t.Run("SkipArithmetic", func(t *testing.T) {
		// Newest first: page 2 with limit 10 starts at the 11th newest.
		tweets, err := db.ListTweets(2, 10)
		require.NoError(t, err)
		require.Len(t, tweets, 10)
		assert.Equal(t, "tweet_14", tweets[0].ID)
	})

	t.Run("SortNewestFirst", func(t *testing.T) {
		tweets, err := db.ListTweets(1, 5)
		require.NoError(t, err)
		require.Len(t, tweets, 5)
		for i := 1; i < len(tweets); i++ {
			assert.False(t, tweets[i].CreatedAt.After(tweets[i-1].CreatedAt))
		}
	})

	t.Run("TweetCount", func(t *testing.T) {
		total, err := db.TweetCount()
		assert.NoError(t, err)
		assert.Equal(t, int64(25), total)
	})
}

func TestDatabaseService_Search(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "user_1", "alice")
	seedTweet(t, db, "tweet_1", "user_1", "Golang is Great", time.Now())
	seedTweet(t, db, "tweet_2", "user_1", "python only", time.Now())

	t.Run("CaseInsensitiveSubstring", func(t *testing.T) {
		tweets, err := db.SearchTweets("gOlAnG", 1, 10)
		require.NoError(t, err)
		require.Len(t, tweets, 1)
		assert.Equal(t, "tweet_1", tweets[0].ID)
	})

	t.Run("NoMatches", func(t *testing.T) {
		tweets, err := db.SearchTweets("rust", 1, 10)
		require.NoError(t, err)
		assert.Empty(t, tweets)
	})
}

func TestDatabaseService_Likes(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "user_1", "alice")
	seedTweet(t, db, "tweet_1", "user_1", "like me", time.Now())

	getLikes := func(t *testing.T) int {
		tweet, err := db.GetTweet("tweet_1")
		require.NoError(t, err)
		return tweet.Likes
	}

	t.Run("LikeThenUnlikeReturnsToZero", func(t *testing.T) {
		require.NoError(t, db.IncrementLikes("tweet_1", 1))
		assert.Equal(t, 1, getLikes(t))

		require.NoError(t, db.IncrementLikes("tweet_1", -1))
		assert.Equal(t, 0, getLikes(t))
	})

	t.Run("UnlikeFromZeroGoesNegative", func(t *testing.T) {
		require.NoError(t, db.IncrementLikes("tweet_1", -1))
		assert.Equal(t, -1, getLikes(t))
	})

	t.Run("MissingTweetIsNoop", func(t *testing.T) {
		assert.NoError(t, db.IncrementLikes("nonexistent_tweet", 1))
	})
}

func TestDatabaseService_Comments(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "user_1", "alice")
	seedUser(t, db, "user_2", "bob")
	seedTweet(t, db, "tweet_1", "user_1", "discuss", time.Now())

	comment := CommentModel{
		ID:        "comment_1",
		TweetID:   "tweet_1",
		UserID:    "user_2",
		Comment:   "hi",
		CreatedAt: time.Now(),
	}

	t.Run("AddComment", func(t *testing.T) {
		require.NoError(t, db.AddComment(&comment))

		tweet, err := db.GetTweet("tweet_1")
		require.NoError(t, err)
		require.Len(t, tweet.Comments, 1)
		assert.Equal(t, "hi", tweet.Comments[0].Comment)
		require.NotNil(t, tweet.Comments[0].User)
		assert.Equal(t, "bob", tweet.Comments[0].User.Username)
	})

	t.Run("RemoveCommentWrongTweet", func(t *testing.T) {
		removed, err := db.RemoveComment("other_tweet", "comment_1")
		assert.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("RemoveComment", func(t *testing.T) {
		removed, err := db.RemoveComment("tweet_1", "comment_1")
		assert.NoError(t, err)
		assert.True(t, removed)

		tweet, err := db.GetTweet("tweet_1")
		require.NoError(t, err)
		assert.Empty(t, tweet.Comments)
	})
}

func TestDatabaseService_Ownership(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "user_1", "alice")
	seedUser(t, db, "user_2", "bob")
	seedTweet(t, db, "tweet_1", "user_1", "mine", time.Now())
	require.NoError(t, db.AddComment(&CommentModel{
		ID:        "comment_1",
		TweetID:   "tweet_1",
		UserID:    "user_2",
		Comment:   "not yours",
		CreatedAt: time.Now(),
	}))

	t.Run("TweetOwnedBy", func(t *testing.T) {
		owned, err := db.TweetOwnedBy("tweet_1", "user_1")
		assert.NoError(t, err)
		assert.True(t, owned)

		owned, err = db.TweetOwnedBy("tweet_1", "user_2")
		assert.NoError(t, err)
		assert.False(t, owned)

		owned, err = db.TweetOwnedBy("nonexistent_tweet", "user_1")
		assert.NoError(t, err)
		assert.False(t, owned)
	})

	t.Run("CommentOwnedByAuthorNotTweetOwner", func(t *testing.T) {
		owned, err := db.CommentOwnedBy("comment_1", "user_2")
		assert.NoError(t, err)
		assert.True(t, owned)

		// The parent tweet's owner has no special right on comments.
		owned, err = db.CommentOwnedBy("comment_1", "user_1")
		assert.NoError(t, err)
		assert.False(t, owned)

		owned, err = db.CommentOwnedBy("nonexistent_comment", "user_2")
		assert.NoError(t, err)
		assert.False(t, owned)
	})
}

func TestDatabaseService_Users(t *testing.T) {
	db := setupTestDB(t)

	t.Run("UserExistsByUsernameOrEmail", func(t *testing.T) {
		seedUser(t, db, "user_1", "alice")

		exists, err := db.UserExists("alice", "other@example.com")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = db.UserExists("other", "alice@example.com")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = db.UserExists("other", "other@example.com")
		assert.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("ListUsersFiltersInactive", func(t *testing.T) {
		inactive := UserModel{
			ID:       "user_2",
			Username: "ghost",
			Email:    "ghost@example.com",
			Name:     "Ghost",
			Password: "hash",
			Active:   false,
		}
		require.NoError(t, db.CreateUser(&inactive))

		users, err := db.ListUsers(1, 10)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "alice", users[0].Username)

		// Total still counts everyone, active or not.
		total, err := db.UserCount()
		assert.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("UpdateUserLeavesUsername", func(t *testing.T) {
		require.NoError(t, db.UpdateUser("user_1", "New Name", "new@example.com", "newhash"))

		user, err := db.GetUserByID("user_1")
		require.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, "newhash", user.Password)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("DeleteUser", func(t *testing.T) {
		deleted, err := db.DeleteUser("nonexistent_user")
		assert.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = db.DeleteUser("user_2")
		assert.NoError(t, err)
		assert.True(t, deleted)
	})
}
