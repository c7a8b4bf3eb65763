package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// GetResume public resume read.
func (c *Portfolio) GetResume(ctx *gin.Context) {
	r, err := c.svc.GetResume(ctx.Request.Context())
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, r)
}

// ReplaceResume discard the stored resume and persist the payload.
func (c *Portfolio) ReplaceResume(ctx *gin.Context) {
	r := new(model.Resume)
	if !bindJSON(ctx, r) {
		return
	}

	r, err := c.svc.ReplaceResume(ctx.Request.Context(), r)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, r)
}

// UpdateResume overwrite the stored resume in place, creating it when
// absent.
func (c *Portfolio) UpdateResume(ctx *gin.Context) {
	r := new(model.Resume)
	if !bindJSON(ctx, r) {
		return
	}

	r, err := c.svc.UpdateResume(ctx.Request.Context(), r)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, r)
}
