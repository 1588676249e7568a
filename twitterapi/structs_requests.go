package twitterapi

type UserLastTweetsRequest struct {
	UserName       string
	Cursor         string
	IncludeReplies bool
}
