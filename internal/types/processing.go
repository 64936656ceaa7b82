package types

// ProcessingResult represents the result of resolving a single user
type ProcessingResult struct {
	Username   string
	Membership UserMembership
	Error      error
}
