package types

import "github.com/google/uuid"

// TokenClaims is the identity asserted by a validated access token.
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
}
