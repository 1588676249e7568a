package twitterapi

import (
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// TwitterAPIService talks to the external tweet-feed provider. It only
// reads; all writes in this system go through the local store.
type TwitterAPIService struct {
	apiKey     string
	baseUrl    string
	httpClient *http.Client
}

func NewTwitterAPIService(apiKey string, baseUrl string, proxyDSN string) *TwitterAPIService {
	transport := &http.Transport{}
	if proxyDSN != "" {
		proxyURL, err := url.Parse(proxyDSN)
		if err != nil {
			panic(err)
		}

		transport = &http.Transport{
			Proxy: http.ProxyURL(proxyURL),
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: false,
			},
		}
	}

	return &TwitterAPIService{
		apiKey:  apiKey,
		baseUrl: baseUrl,
		httpClient: &http.Client{
			Timeout:   10 * time.Second,
			Transport: transport,
		},
	}
}

func (s *TwitterAPIService) makeRequest(uri string, params map[string]string) (*APIResponse, error) {
	req, err := http.NewRequest("GET", uri, nil)
	if err != nil {
		return nil, fmt.Errorf("error create request: %w", err)
	}

	req.Header.Set("X-API-Key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	q := req.URL.Query()
	for key, value := range params {
		if value != "" {
			q.Add(key, value)
		}
	}

	req.URL.RawQuery = q.Encode()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error read response: %w", err)
	}

	return &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		RawBody:    bodyBytes,
	}, nil
}

// GetUserLastTweets fetches the recent tweets of one user from the
// provider.
func (s *TwitterAPIService) GetUserLastTweets(req UserLastTweetsRequest) (*UserLastTweetsResponse, error) {
	uri := s.baseUrl + "/twitter/user/last_tweets"

	params := map[string]string{
		"userName":       req.UserName,
		"cursor":         req.Cursor,
		"includeReplies": strconv.FormatBool(req.IncludeReplies),
	}

	response, err := s.makeRequest(uri, params)
	if err != nil {
		return nil, fmt.Errorf("error user last tweets: %w", err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("error user last tweets, status non 200: %s", string(response.RawBody))
	}

	return ParseUserLastTweets(response.RawBody)
}
