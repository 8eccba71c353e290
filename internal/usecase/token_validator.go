package usecase

import (
	"office-booking/internal/pkg/errs"
	"office-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrInvalidToken = errs.New("invalid token")

// Identity is the authenticated caller extracted from a token minted by the
// external auth service.
type Identity struct {
	UserID  uuid.UUID
	Roles   []string
	IsAdmin bool
}

type TokenValidator interface {
	ValidateToken(token string) (Identity, error)
}

type jwtTokenValidator struct {
	service *jwt.Service
}

func NewTokenValidator(service *jwt.Service) TokenValidator {
	return &jwtTokenValidator{service: service}
}

func (v *jwtTokenValidator) ValidateToken(token string) (Identity, error) {
	claims, err := v.service.ValidateToken(token)
	if err != nil {
		return Identity{}, errs.Mark(err, ErrInvalidToken)
	}
	return Identity{
		UserID:  claims.UserID,
		Roles:   claims.Roles,
		IsAdmin: claims.IsAdmin,
	}, nil
}
