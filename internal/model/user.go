package model

import "time"

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	LastName     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthUser is the identity attached to a request after the bearer
// middleware accepted its token.
type AuthUser struct {
	ID       string
	Username string
}

// UserSummary is the listing projection. It deliberately has no
// password hash field.
type UserSummary struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}
