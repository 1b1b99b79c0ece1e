package v1

import (
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(public, candidate *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	public.GET("/profile", handler.GetProfile)
	candidate.POST("/profile", handler.UpsertProfile)
}

// GetProfile godoc
// @Summary      Get a candidate profile
// @Description  profile is null and completion 0 when the user has no profile yet.
// @Tags         profile
// @Produce      json
// @Param        userId  query     string  true  "User ID"
// @Success      200     {object}  map[string]interface{}
// @Failure      400     {object}  response.ErrorResponse
// @Router       /profile [get]
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("userId"))
	if userID == "" {
		_ = c.Error(apperror.Validation("userId is required"))
		return
	}

	profile, err := h.candidateUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"profile":    profile,
		"completion": profile.Completion(),
	})
}

// UpsertProfile godoc
// @Summary      Create or update a candidate profile
// @Description  Omitted fields keep their stored values.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.ProfileInput  true  "Profile JSON"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorResponse
// @Failure      403      {object}  response.ErrorResponse
// @Router       /profile [post]
// @Security     BearerAuth
func (h *CandidateHandler) UpsertProfile(c *gin.Context) {
	var req domain.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	profile, err := h.candidateUC.UpsertProfile(userContext(c), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"profile":    profile,
		"completion": profile.Completion(),
	})
}
