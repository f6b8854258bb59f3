package usecase

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator.go -package=usecasemock

import (
	"amenity-booking/internal/domain/authz"
	"amenity-booking/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (authz.ViewerContext, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (authz.ViewerContext, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return authz.ViewerContext{}, err
	}

	role, err := authz.NewRole(claims.Role)
	if err != nil {
		return authz.ViewerContext{}, err
	}

	return authz.NewViewer(claims.UserID, role), nil
}
