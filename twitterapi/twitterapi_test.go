package twitterapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePayload = `{
	"status": "success",
	"msg": "",
	"data": {
		"pin_tweet": null,
		"tweets": [
			{"id": "100", "text": "first", "createdAt": "Tue Dec 10 07:00:30 +0000 2024",
			 "author": {"id": "u1", "userName": "jack", "name": "Jack"}},
			{"id": "101", "text": "second", "createdAt": "Tue Dec 10 08:00:30 +0000 2024",
			 "author": {"id": "u1", "userName": "jack", "name": "Jack"}}
		]
	},
	"has_next_page": true,
	"next_cursor": "abc"
}`

func TestParseUserLastTweets(t *testing.T) {
	response, err := ParseUserLastTweets([]byte(samplePayload))
	require.NoError(t, err)

	assert.Equal(t, "success", response.Status)
	assert.True(t, response.HasNextPage)
	assert.Equal(t, "abc", response.NextCursor)

	require.Len(t, response.Tweets, 2)
	assert.Equal(t, "100", response.Tweets[0].Id)
	assert.Equal(t, "first", response.Tweets[0].Text)
	assert.Equal(t, "jack", response.Tweets[0].Author.UserName)
	assert.Equal(t, "Jack", response.Tweets[1].Author.Name)
}

func TestGetUserLastTweets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/twitter/user/last_tweets", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
		assert.Equal(t, "jack", r.URL.Query().Get("userName"))
		w.Write([]byte(samplePayload))
	}))
	defer server.Close()

	service := NewTwitterAPIService("test-key", server.URL, "")

	response, err := service.GetUserLastTweets(UserLastTweetsRequest{UserName: "jack"})
	require.NoError(t, err)
	assert.Len(t, response.Tweets, 2)
}

func TestGetUserLastTweetsNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	service := NewTwitterAPIService("test-key", server.URL, "")

	_, err := service.GetUserLastTweets(UserLastTweetsRequest{UserName: "jack"})
	assert.Error(t, err)
}
