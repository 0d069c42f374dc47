package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the claims of the browser-session token.
type Payload struct {
	// StandardClaims carries expiry, issue time and issuer.
	jwt.StandardClaims `json:"standard_claims"`

	// SessionID identifies the browser session in the session registry.
	SessionID string `json:"sid"`
}
