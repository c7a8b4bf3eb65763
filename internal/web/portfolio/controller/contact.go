package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Laisky/laisky-portfolio-api/internal/web/portfolio/dto"
)

// SubmitContact public contact form submission. Confirms receipt only;
// the stored message is visible solely through the admin inbox.
func (c *Portfolio) SubmitContact(ctx *gin.Context) {
	sub := new(dto.ContactSubmission)
	if !bindJSON(ctx, sub) {
		return
	}

	if err := c.svc.SubmitContact(ctx.Request.Context(), sub); err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

// ListContacts admin contact inbox, optionally filtered by status.
func (c *Portfolio) ListContacts(ctx *gin.Context) {
	contacts, err := c.svc.ListContacts(ctx.Request.Context(),
		dto.ParseContactFilter(ctx.Request.URL.Query()))
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, contacts)
}

// GetContactByID admin contact read by id.
func (c *Portfolio) GetContactByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	msg, err := c.svc.GetContactByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, msg)
}

// UpdateContact admin triage update, status and replied only.
func (c *Portfolio) UpdateContact(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	u := new(dto.ContactUpdate)
	if !bindJSON(ctx, u) {
		return
	}

	msg, err := c.svc.UpdateContact(ctx.Request.Context(), id, u)
	if err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, msg)
}

// DeleteContact remove a contact message.
func (c *Portfolio) DeleteContact(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.svc.DeleteContact(ctx.Request.Context(), id); err != nil {
		c.respondErr(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}
