package service

import (
	"context"
	"time"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/Laisky/zap"
	jwtLib "github.com/golang-jwt/jwt/v5"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
	"github.com/Laisky/laisky-portfolio-api/library/jwt"
)

const (
	tokenIssuer = "laisky-portfolio-api"
	tokenTTL    = 7 * 24 * time.Hour
)

// Login validate credentials and mint a session token. The role rides
// in the claims; the admin gate checks it on every privileged request.
func (s *Portfolio) Login(ctx context.Context, req *dto.LoginRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", errors.Wrap(model.ErrInvalid, "email and password are required")
	}

	u, err := s.dao.ValidateLogin(ctx, req.Email, req.Password)
	if err != nil {
		return "", errors.Wrapf(err, "validate login for %q", req.Email)
	}

	now := gutils.Clock.GetUTCNow()
	token, err := s.jwt.Sign(&jwt.UserClaims{
		RegisteredClaims: jwtLib.RegisteredClaims{
			Subject:   u.ID.Hex(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwtLib.NewNumericDate(now),
			ExpiresAt: jwtLib.NewNumericDate(now.Add(tokenTTL)),
		},
		Email: u.Email,
		Role:  string(u.Role),
	})
	if err != nil {
		return "", errors.Wrapf(err, "sign token for %q", u.Email)
	}

	s.logger.Info("user login", zap.String("email", u.Email))
	return token, nil
}
