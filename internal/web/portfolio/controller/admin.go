package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Stats aggregate collection counts for the admin dashboard.
func (c *Portfolio) Stats(ctx *gin.Context) {
	stats, err := c.svc.Stats(ctx.Request.Context())
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// Init bootstrap the database with the admin account and sample content.
// Idempotent; calling it on a populated database creates nothing.
func (c *Portfolio) Init(ctx *gin.Context) {
	created, err := c.svc.Seed(ctx.Request.Context())
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Database initialized",
		"created": created,
	})
}
