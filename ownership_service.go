package main

// OwnershipService answers whether a principal may mutate a resource.
// Both predicates are read-only: a nonexistent resource id yields false,
// never an error. Store failures are returned as errors so callers can
// distinguish "denied" from "could not check".
type OwnershipService struct {
	databaseService *DatabaseService
}

func NewOwnershipService(databaseService *DatabaseService) *OwnershipService {
	return &OwnershipService{databaseService: databaseService}
}

// UserOwnsTweet is true iff a tweet with this id exists and its owning
// user is userID.
func (s *OwnershipService) UserOwnsTweet(userID, tweetID string) (bool, error) {
	return s.databaseService.TweetOwnedBy(tweetID, userID)
}

// UserOwnsComment is true iff any tweet contains a comment with this id
// authored by userID. The parent tweet's owner has no special right
// here.
func (s *OwnershipService) UserOwnsComment(userID, commentID string) (bool, error) {
	return s.databaseService.CommentOwnedBy(commentID, userID)
}
