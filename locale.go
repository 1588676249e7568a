package main

// Message catalog for API responses. Kept in one place so wording stays
// consistent between handlers and middleware.
const (
	MSG_OK = "ok"

	MSG_TWEET_NOT_EXISTS   = "tweet does not exist"
	MSG_TWEET_ON_DELETE    = "error while deleting tweet"
	MSG_TWEET_DELETED      = "tweet deleted"
	MSG_TWEET_ON_CREATE    = "error while creating tweet"
	MSG_TWEET_NOT_UPDATED  = "not updated"
	MSG_COMMENT_NOT_EXISTS = "comment does not exist"
	MSG_COMMENT_ON_DELETE  = "error while deleting comment"
	MSG_COMMENT_DELETED    = "comment deleted"
	MSG_NO_SEARCH_QUERY    = "No search query provided"

	MSG_USER_EXISTS     = "username or email already in use"
	MSG_USER_NOT_EXISTS = "user does not exist"
	MSG_USER_ON_UPDATE  = "error while updating user"
	MSG_USER_UPDATED    = "user updated"
	MSG_USER_ON_DELETE  = "error while deleting user"
	MSG_USER_DELETED    = "user deleted"

	MSG_INVALID_DATA   = "invalid data"
	MSG_NOT_AUTHORIZED = "authentication required"
	MSG_ACCESS_DENIED  = "access denied"
	MSG_EXTERNAL_FEED  = "error while fetching external tweets"
)
