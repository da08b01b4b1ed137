package models

import "github.com/dmitrijs2005/lumina/internal/timex"

// CredentialPair is the access/refresh token tuple. Both halves are
// created, persisted and cleared together.
type CredentialPair struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
	TokenType    string `json:"token_type,omitempty"`
}

// Empty reports whether no access token is held.
func (p CredentialPair) Empty() bool {
	return p.AccessToken == ""
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
}

// RegisterRequest mirrors the backend's account-creation constraints.
type RegisterRequest struct {
	Username  string       `json:"username" validate:"required,min=3,max=50"`
	Email     string       `json:"email" validate:"required,email"`
	Password  string       `json:"password" validate:"required,min=8"`
	Bio       string       `json:"bio,omitempty" validate:"max=500"`
	Socials   *SocialLinks `json:"socials,omitempty"`
	AvatarURL string       `json:"avatar_url,omitempty" validate:"omitempty,url"`
}

type User struct {
	ID               string       `json:"id" validate:"required"`
	HashID           string       `json:"hashid,omitempty"`
	Username         string       `json:"username" validate:"required"`
	Email            string       `json:"email"`
	Bio              string       `json:"bio,omitempty"`
	Socials          *SocialLinks `json:"socials,omitempty"`
	AvatarURL        string       `json:"avatar_url,omitempty"`
	Badges           []string     `json:"badges"`
	UnlockedGalaxies []string     `json:"unlocked_galaxies"`
	IsAdmin          bool         `json:"is_admin"`
	CreatedAt        timex.Time   `json:"created_at"`
	UpdatedAt        timex.Time   `json:"updated_at"`
}

// UserUpdate is the body of PUT /api/users/me. Nil fields are left as is.
type UserUpdate struct {
	Username  *string      `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Bio       *string      `json:"bio,omitempty" validate:"omitempty,max=500"`
	Socials   *SocialLinks `json:"socials,omitempty"`
	AvatarURL *string      `json:"avatar_url,omitempty"`
}
