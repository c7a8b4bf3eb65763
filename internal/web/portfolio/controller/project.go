package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// ListProjects public project listing, unfiltered by publish state.
func (c *Portfolio) ListProjects(ctx *gin.Context) {
	projects, err := c.svc.ListProjects(ctx.Request.Context(),
		dto.ParseProjectFilter(ctx.Request.URL.Query()))
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// GetProjectByID privileged project read by id.
func (c *Portfolio) GetProjectByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	p, err := c.svc.GetProjectByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// CreateProject create a project.
func (c *Portfolio) CreateProject(ctx *gin.Context) {
	p := new(model.Project)
	if !bindJSON(ctx, p) {
		return
	}

	p, err := c.svc.CreateProject(ctx.Request.Context(), p)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

// UpdateProject apply a partial update to a project.
func (c *Portfolio) UpdateProject(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	u := new(dto.ProjectUpdate)
	if !bindJSON(ctx, u) {
		return
	}

	p, err := c.svc.UpdateProject(ctx.Request.Context(), id, u)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// DeleteProject remove a project.
func (c *Portfolio) DeleteProject(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.svc.DeleteProject(ctx.Request.Context(), id); err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
