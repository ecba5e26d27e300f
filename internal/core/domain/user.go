package domain

// User models a login-capable account in the business store. Credentials are
// verified against PasswordHash (bcrypt); PartnerID links the account to its
// contact record and TeamID to its sales team, when any.
type User struct {
	ID           int    `json:"id"`
	Login        string `json:"login"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role,omitempty"`
	PartnerID    int    `json:"partner_id,omitempty"`
	TeamID       int    `json:"team_id,omitempty"`
}
