package main

import "time"

// Public identity fields of a user, used wherever an owning or authoring
// user reference is expanded in a response. Raw owner ids are never
// returned on their own.
type UserRefResponse struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type CommentResponse struct {
	ID        string          `json:"id"`
	Comment   string          `json:"comment"`
	User      UserRefResponse `json:"user"`
	CreatedAt time.Time       `json:"createdAt"`
}

type TweetResponse struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	Likes     int               `json:"likes"`
	User      UserRefResponse   `json:"user"`
	Comments  []CommentResponse `json:"comments"`
	CreatedAt time.Time         `json:"createdAt"`
}

// Projection used by GET /users listings.
type UserListItemResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Envelope for every paginated listing.
type ListResponse struct {
	HasMore     bool        `json:"hasMore"`
	TotalPages  int         `json:"totalPages"`
	Total       int64       `json:"total"`
	Data        interface{} `json:"data"`
	CurrentPage int         `json:"currentPage"`
}

type ExternalTweetResponse struct {
	Text      string `json:"text"`
	CreatedAt string `json:"created_at"`
}

func NewUserRefResponse(u *UserModel) UserRefResponse {
	if u == nil {
		return UserRefResponse{}
	}
	return UserRefResponse{Name: u.Name, Username: u.Username, Email: u.Email}
}

func NewCommentResponse(c CommentModel) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Comment:   c.Comment,
		User:      NewUserRefResponse(c.User),
		CreatedAt: c.CreatedAt,
	}
}

func NewTweetResponse(t TweetModel) TweetResponse {
	comments := make([]CommentResponse, 0, len(t.Comments))
	for _, c := range t.Comments {
		comments = append(comments, NewCommentResponse(c))
	}
	return TweetResponse{
		ID:        t.ID,
		Content:   t.Content,
		Likes:     t.Likes,
		User:      NewUserRefResponse(t.User),
		Comments:  comments,
		CreatedAt: t.CreatedAt,
	}
}

func NewTweetResponses(tweets []TweetModel) []TweetResponse {
	responses := make([]TweetResponse, 0, len(tweets))
	for _, t := range tweets {
		responses = append(responses, NewTweetResponse(t))
	}
	return responses
}

func NewUserListResponse(users []UserModel) []UserListItemResponse {
	items := make([]UserListItemResponse, 0, len(users))
	for _, u := range users {
		items = append(items, UserListItemResponse{
			ID:        u.ID,
			Name:      u.Name,
			Username:  u.Username,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}
	return items
}
