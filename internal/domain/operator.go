package domain

import "github.com/golang-jwt/jwt/v5"

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// OperatorClaims são as claims do JWT aceito pela API de operação
type OperatorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
