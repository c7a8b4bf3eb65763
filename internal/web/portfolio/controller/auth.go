package controller

import (
	"net/http"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

const (
	// sessionCookie carries the session token for browser clients;
	// API clients may send a bearer header instead.
	sessionCookie = "token"
	// sessionMaxAge cookie lifetime in seconds, aligned with token expiry
	sessionMaxAge = 7 * 24 * 60 * 60
	// ctxKeyUserClaims gin context key holding the verified claims
	ctxKeyUserClaims = "user_claims"
)

// Login validate credentials and establish an admin session. The token
// is returned in the body and set as an http-only cookie.
func (c *Portfolio) Login(ctx *gin.Context) {
	req := new(dto.LoginRequest)
	if !bindJSON(ctx, req) {
		return
	}

	token, err := c.svc.Login(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalid) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.logger.Debug("login rejected", zap.String("email", req.Email), zap.Error(err))
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	ctx.SetCookie(sessionCookie, token, sessionMaxAge, "/", "", false, true)
	ctx.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// AdminRequired gate for every privileged route. Rejects with 401 before
// any handler runs unless the request carries a valid admin token.
func (c *Portfolio) AdminRequired(ctx *gin.Context) {
	token := sessionToken(ctx)
	if token == "" {
		abortUnauthorized(ctx)
		return
	}

	uc, err := c.jwt.Parse(token)
	if err != nil {
		c.logger.Debug("reject invalid token", zap.Error(err))
		abortUnauthorized(ctx)
		return
	}
	if !uc.IsAdmin() {
		abortUnauthorized(ctx)
		return
	}

	ctx.Set(ctxKeyUserClaims, uc)
	ctx.Next()
}

func abortUnauthorized(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}

// sessionToken extract the token from the session cookie, falling back
// to a bearer authorization header.
func sessionToken(ctx *gin.Context) string {
	if v, err := ctx.Cookie(sessionCookie); err == nil && v != "" {
		return v
	}

	const prefix = "Bearer "
	if h := ctx.GetHeader("Authorization"); strings.HasPrefix(h, prefix) {
		return strings.TrimPrefix(h, prefix)
	}

	return ""
}
