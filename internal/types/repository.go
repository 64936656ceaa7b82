package types

// Repository is a repository returned by the worm signature search
type Repository struct {
	Owner string `json:"owner"`
	Name  string `json:"repo"`
	URL   string `json:"url"`
}

// UserResult is the per-account unit of the final report
type UserResult struct {
	Username     string
	Repositories []Repository
	Memberships  []Membership
}
