package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-dev/portfolio-api/internal/dto"
	apierrors "github.com/folio-dev/portfolio-api/internal/errors"
	"github.com/folio-dev/portfolio-api/internal/services"
)

// ContactHandler accepts contact form submissions.
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Submit logs the message and acknowledges it.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	reply, err := h.contactService.Submit(c.Request.Context(), req.ToContactMessage())
	if err != nil {
		reportError(c, err, "error processing contact form")
		apierrors.InternalError(c, "Failed to send message")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: reply})
}
