package models

import "time"

// OAuthToken records an access token issued to an API client so that the
// tokens of a client, or of every client a user owns, can be revoked together.
type OAuthToken struct {
	ID          uint   `gorm:"primaryKey"`
	ClientID    string `gorm:"not null;index"`
	UserID      string `gorm:"index"` // decimal user id, the form go-oauth2 passes around
	AccessToken string `gorm:"uniqueIndex;not null"`
	Scopes      string
	ExpiresAt   time.Time `gorm:"not null;index"`
	CreatedAt   time.Time
}

func (OAuthToken) TableName() string {
	return "oauth_tokens"
}

// Expired reports whether the token can no longer be used at now
func (t *OAuthToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
