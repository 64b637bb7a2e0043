package domain

// User is owned by the account/CRUD layer; the negotiation core only
// reads it to resolve display names.
type User struct {
	ID       string
	Username string
}
