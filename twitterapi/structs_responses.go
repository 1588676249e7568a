package twitterapi

import (
	"net/http"

	"github.com/buger/jsonparser"
)

type APIResponse struct {
	StatusCode int
	Headers    http.Header
	RawBody    []byte
}

type Author struct {
	Id       string `json:"id"`
	UserName string `json:"userName"`
	Name     string `json:"name"`
}

type Tweet struct {
	Id        string `json:"id"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
	Author    Author `json:"author"`
}

type UserLastTweetsResponse struct {
	Status      string  `json:"status"`
	Msg         string  `json:"msg"`
	Tweets      []Tweet `json:"tweets"`
	HasNextPage bool    `json:"has_next_page"`
	NextCursor  string  `json:"next_cursor"`
}

// ParseUserLastTweets extracts the tweet list from the provider payload.
// The provider nests tweets under data.tweets and pads responses with
// fields we do not use, so the payload is walked with jsonparser rather
// than unmarshalled wholesale.
func ParseUserLastTweets(data []byte) (*UserLastTweetsResponse, error) {
	response := &UserLastTweetsResponse{}

	response.Status, _ = jsonparser.GetString(data, "status")
	response.Msg, _ = jsonparser.GetString(data, "msg")
	response.HasNextPage, _ = jsonparser.GetBoolean(data, "has_next_page")
	response.NextCursor, _ = jsonparser.GetString(data, "next_cursor")

	_, err := jsonparser.ArrayEach(data, func(entry []byte, dataType jsonparser.ValueType, offset int, parseErr error) {
		if parseErr != nil {
			return
		}
		tweet := Tweet{}
		tweet.Id, _ = jsonparser.GetString(entry, "id")
		tweet.Text, _ = jsonparser.GetString(entry, "text")
		tweet.CreatedAt, _ = jsonparser.GetString(entry, "createdAt")
		tweet.Author.Id, _ = jsonparser.GetString(entry, "author", "id")
		tweet.Author.UserName, _ = jsonparser.GetString(entry, "author", "userName")
		tweet.Author.Name, _ = jsonparser.GetString(entry, "author", "name")
		response.Tweets = append(response.Tweets, tweet)
	}, "data", "tweets")
	if err != nil {
		return nil, err
	}

	return response, nil
}
