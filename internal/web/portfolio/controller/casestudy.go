package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// ListCaseStudies public case study listing, unfiltered by publish state.
func (c *Portfolio) ListCaseStudies(ctx *gin.Context) {
	studies, err := c.svc.ListCaseStudies(ctx.Request.Context(),
		dto.ParseCaseStudyFilter(ctx.Request.URL.Query()))
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, studies)
}

// GetCaseStudy public case study detail by slug.
func (c *Portfolio) GetCaseStudy(ctx *gin.Context) {
	cs, err := c.svc.GetCaseStudyBySlug(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cs)
}

// GetCaseStudyByID privileged case study read by id.
func (c *Portfolio) GetCaseStudyByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	cs, err := c.svc.GetCaseStudyByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cs)
}

// CreateCaseStudy create a case study.
func (c *Portfolio) CreateCaseStudy(ctx *gin.Context) {
	cs := new(model.CaseStudy)
	if !bindJSON(ctx, cs) {
		return
	}

	cs, err := c.svc.CreateCaseStudy(ctx.Request.Context(), cs)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, cs)
}

// UpdateCaseStudy apply a partial update to a case study.
func (c *Portfolio) UpdateCaseStudy(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	u := new(dto.CaseStudyUpdate)
	if !bindJSON(ctx, u) {
		return
	}

	cs, err := c.svc.UpdateCaseStudy(ctx.Request.Context(), id, u)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, cs)
}

// DeleteCaseStudy remove a case study.
func (c *Portfolio) DeleteCaseStudy(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.svc.DeleteCaseStudy(ctx.Request.Context(), id); err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Case study deleted successfully"})
}

// DebugCaseStudies debug-only listing that surfaces error details,
// registered only when the server runs in debug mode.
func (c *Portfolio) DebugCaseStudies(ctx *gin.Context) {
	studies, err := c.svc.ListCaseStudies(ctx.Request.Context(), dto.CaseStudyFilter{})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":  "Failed to fetch case studies",
			"detail": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"count":        len(studies),
		"case_studies": studies,
	})
}
