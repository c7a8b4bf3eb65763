// Package controller exposes the portfolio REST API over gin.
package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/service"
	"github.com/Laisky/laisky-portfolio-api/library/jwt"
)

// Portfolio portfolio API controller
type Portfolio struct {
	logger glog.Logger
	svc    *service.Portfolio
	jwt    *jwt.JWT
}

// New new portfolio controller
func New(logger glog.Logger, svc *service.Portfolio, jwtLib *jwt.JWT) *Portfolio {
	return &Portfolio{
		logger: logger,
		svc:    svc,
		jwt:    jwtLib,
	}
}

// respondErr translate a service error into the uniform error envelope.
// Validation failures carry their message; anything unexpected is logged
// and hidden behind a generic message.
func (c *Portfolio) respondErr(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, model.ErrInvalid):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.logger.Error("request failed",
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parseID parse the :id route parameter, answering 400 before any
// persistence access when the hex is malformed.
func parseID(ctx *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return primitive.NilObjectID, false
	}

	return id, true
}

// bindJSON bind the request body, answering 400 on malformed payloads.
func bindJSON(ctx *gin.Context, v any) bool {
	if err := ctx.ShouldBindJSON(v); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return false
	}

	return true
}
