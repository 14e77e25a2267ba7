package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims represents the custom claims in our JWT tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID     int64  `json:"user_id"`
	CustomerID int64  `json:"customer_id"`
	Email      string `json:"email,omitempty"`
	TokenType  string `json:"token_type"`
}
