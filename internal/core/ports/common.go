package ports

// UserSummary is the public slice of a user embedded in enriched views
// (vet profile owner, comment author, rating author). Never carries the
// password hash or address.
type UserSummary struct {
	ID    string
	Name  string
	Email string
}
