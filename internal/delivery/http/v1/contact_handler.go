package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  The submission is stored first; emailSent reports whether the notification went out.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact Form Data"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	sent, err := h.contactUC.Submit(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"submission": req,
		"emailSent":  sent,
	})
}
