package domain

import "time"

// TokenPair carries the signed credentials minted for a login or reissue.
// The refresh token outlives the access token; only the most recently issued
// refresh token per member is honored.
type TokenPair struct {
	GrantType        string    `json:"grant_type"`
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// RefreshTTL returns the remaining lifetime of the refresh token, used as the
// TTL of the session cache entry.
func (p *TokenPair) RefreshTTL() time.Duration {
	return time.Until(p.RefreshExpiresAt)
}

// RevokedMarker is the value stored under a revoked access token's key
const RevokedMarker = "logout"

// RefreshKey builds the session cache key holding a member's current refresh token
func RefreshKey(memberID string) string {
	return "RT:" + memberID
}
