package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/model"
)

// ListGallery public gallery listing. Unpublished items stay hidden
// unless the caller asks for a publish state explicitly.
func (c *Portfolio) ListGallery(ctx *gin.Context) {
	f := dto.ParseGalleryFilter(ctx.Request.URL.Query())
	if f.Published == nil {
		published := true
		f.Published = &published
	}

	items, err := c.svc.ListGallery(ctx.Request.Context(), f)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// GetGalleryByID privileged gallery read by id.
func (c *Portfolio) GetGalleryByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	g, err := c.svc.GetGalleryByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, g)
}

// CreateGallery create a gallery item. Omitting "published" publishes
// the item, while an explicit false keeps it hidden.
func (c *Portfolio) CreateGallery(ctx *gin.Context) {
	var req struct {
		model.Gallery
		Published *bool `json:"published"`
	}
	if !bindJSON(ctx, &req) {
		return
	}

	g := req.Gallery
	if req.Published != nil {
		g.Published = *req.Published
	}

	created, err := c.svc.CreateGallery(ctx.Request.Context(), &g, req.Published != nil)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// UpdateGallery apply a partial update to a gallery item.
func (c *Portfolio) UpdateGallery(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	u := new(dto.GalleryUpdate)
	if !bindJSON(ctx, u) {
		return
	}

	g, err := c.svc.UpdateGallery(ctx.Request.Context(), id, u)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, g)
}

// DeleteGallery remove a gallery item.
func (c *Portfolio) DeleteGallery(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.svc.DeleteGallery(ctx.Request.Context(), id); err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Gallery item deleted successfully"})
}

// ListOurStory public story listing, published sections only by default.
func (c *Portfolio) ListOurStory(ctx *gin.Context) {
	f := dto.ParseOurStoryFilter(ctx.Request.URL.Query())
	if f.Published == nil {
		published := true
		f.Published = &published
	}

	sections, err := c.svc.ListOurStory(ctx.Request.Context(), f)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, sections)
}

// GetOurStoryByID privileged story section read by id.
func (c *Portfolio) GetOurStoryByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	o, err := c.svc.GetOurStoryByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, o)
}

// CreateOurStory create a story section, published unless stated otherwise.
func (c *Portfolio) CreateOurStory(ctx *gin.Context) {
	var req struct {
		model.OurStory
		Published *bool `json:"published"`
	}
	if !bindJSON(ctx, &req) {
		return
	}

	o := req.OurStory
	if req.Published != nil {
		o.Published = *req.Published
	}

	created, err := c.svc.CreateOurStory(ctx.Request.Context(), &o, req.Published != nil)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// UpdateOurStory apply a partial update to a story section.
func (c *Portfolio) UpdateOurStory(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	u := new(dto.OurStoryUpdate)
	if !bindJSON(ctx, u) {
		return
	}

	o, err := c.svc.UpdateOurStory(ctx.Request.Context(), id, u)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, o)
}

// DeleteOurStory remove a story section.
func (c *Portfolio) DeleteOurStory(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.svc.DeleteOurStory(ctx.Request.Context(), id); err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Story section deleted successfully"})
}

// ListSuccessStories public success story listing.
func (c *Portfolio) ListSuccessStories(ctx *gin.Context) {
	stories, err := c.svc.ListSuccessStories(ctx.Request.Context(),
		dto.ParseSuccessStoryFilter(ctx.Request.URL.Query()))
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stories)
}

// GetSuccessStoryByID privileged success story read by id.
func (c *Portfolio) GetSuccessStoryByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	st, err := c.svc.GetSuccessStoryByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, st)
}

// CreateSuccessStory create a success story.
func (c *Portfolio) CreateSuccessStory(ctx *gin.Context) {
	st := new(model.SuccessStory)
	if !bindJSON(ctx, st) {
		return
	}

	st, err := c.svc.CreateSuccessStory(ctx.Request.Context(), st)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, st)
}

// UpdateSuccessStory apply a partial update to a success story.
func (c *Portfolio) UpdateSuccessStory(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	u := new(dto.SuccessStoryUpdate)
	if !bindJSON(ctx, u) {
		return
	}

	st, err := c.svc.UpdateSuccessStory(ctx.Request.Context(), id, u)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, st)
}

// DeleteSuccessStory remove a success story.
func (c *Portfolio) DeleteSuccessStory(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.svc.DeleteSuccessStory(ctx.Request.Context(), id); err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Success story deleted successfully"})
}

// ListTechnologies public technology listing, proficiency descending.
func (c *Portfolio) ListTechnologies(ctx *gin.Context) {
	techs, err := c.svc.ListTechnologies(ctx.Request.Context(),
		dto.ParseTechnologyFilter(ctx.Request.URL.Query()))
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, techs)
}

// GetTechnologyByID privileged technology read by id.
func (c *Portfolio) GetTechnologyByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	t, err := c.svc.GetTechnologyByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, t)
}

// CreateTechnology create a technology.
func (c *Portfolio) CreateTechnology(ctx *gin.Context) {
	t := new(model.Technology)
	if !bindJSON(ctx, t) {
		return
	}

	t, err := c.svc.CreateTechnology(ctx.Request.Context(), t)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, t)
}

// UpdateTechnology apply a partial update to a technology.
func (c *Portfolio) UpdateTechnology(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	u := new(dto.TechnologyUpdate)
	if !bindJSON(ctx, u) {
		return
	}

	t, err := c.svc.UpdateTechnology(ctx.Request.Context(), id, u)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, t)
}

// DeleteTechnology remove a technology.
func (c *Portfolio) DeleteTechnology(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.svc.DeleteTechnology(ctx.Request.Context(), id); err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Technology deleted successfully"})
}
