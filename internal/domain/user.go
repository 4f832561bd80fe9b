package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims do token de operador usado nas rotas de cron.
type Claims struct {
	OperatorEmail string
	jwt.RegisteredClaims
}
