package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/mintora/goapi/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

// AuthUsecase issues and validates principal tokens. Session issuance
// itself lives outside the marketplace core, the adapter only needs
// ParseToken to resolve the caller.
type AuthUsecase interface {
	SignToken(ctx ctx.Ctx, address Address) (string, error)
	ParseToken(ctx ctx.Ctx, token string) (string, error)
}
