package types

import "github.com/google/uuid"

// TokenClaims represents the validated claims of an access token.
type TokenClaims struct {
	UserID uuid.UUID
	Role   string
}
