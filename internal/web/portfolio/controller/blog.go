package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// ListBlogs public blog listing. Drafts stay hidden unless the caller
// asks for a publish state explicitly.
func (c *Portfolio) ListBlogs(ctx *gin.Context) {
	f := dto.ParseBlogFilter(ctx.Request.URL.Query())
	if f.Published == nil {
		published := true
		f.Published = &published
	}

	blogs, err := c.svc.ListBlogs(ctx.Request.Context(), f)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, blogs)
}

// GetBlog public blog detail by slug, published posts only.
func (c *Portfolio) GetBlog(ctx *gin.Context) {
	b, err := c.svc.GetPublishedBlog(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, b)
}

// GetBlogByID privileged blog read by id, drafts included.
func (c *Portfolio) GetBlogByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	b, err := c.svc.GetBlogByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, b)
}

// CreateBlog create a blog post.
func (c *Portfolio) CreateBlog(ctx *gin.Context) {
	b := new(model.Blog)
	if !bindJSON(ctx, b) {
		return
	}

	b, err := c.svc.CreateBlog(ctx.Request.Context(), b)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, b)
}

// UpdateBlog apply a partial update to a blog post.
func (c *Portfolio) UpdateBlog(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	u := new(dto.BlogUpdate)
	if !bindJSON(ctx, u) {
		return
	}

	b, err := c.svc.UpdateBlog(ctx.Request.Context(), id, u)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, b)
}

// DeleteBlog remove a blog post.
func (c *Portfolio) DeleteBlog(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.svc.DeleteBlog(ctx.Request.Context(), id); err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Blog deleted successfully"})
}
