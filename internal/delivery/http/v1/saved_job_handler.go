package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	savedJobUC domain.SavedJobUsecase
}

// NewSavedJobHandler registers the saved job routes. The user is always the
// token subject.
func NewSavedJobHandler(candidate *gin.RouterGroup, savedJobUC domain.SavedJobUsecase) {
	handler := &SavedJobHandler{savedJobUC: savedJobUC}

	saved := candidate.Group("/saved-jobs")
	{
		saved.GET("", handler.List)
		saved.POST("", handler.Save)
		saved.GET("/:jobId", handler.Status)
		saved.DELETE("/:jobId", handler.Unsave)
	}
}

type SaveJobRequest struct {
	JobID string `json:"jobId" binding:"required"`
}

// List godoc
// @Summary      List saved jobs
// @Tags         saved-jobs
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  response.ErrorResponse
// @Router       /saved-jobs [get]
// @Security     BearerAuth
func (h *SavedJobHandler) List(c *gin.Context) {
	saved, err := h.savedJobUC.ListSavedJobs(userContext(c), subject(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"savedJobs": saved})
}

// Save godoc
// @Summary      Save a job
// @Description  Saving an already saved job succeeds.
// @Tags         saved-jobs
// @Accept       json
// @Produce      json
// @Param        request  body      SaveJobRequest  true  "Job to save"
// @Success      201      {object}  map[string]interface{}
// @Failure      404      {object}  response.ErrorResponse
// @Router       /saved-jobs [post]
// @Security     BearerAuth
func (h *SavedJobHandler) Save(c *gin.Context) {
	var req SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	if err := h.savedJobUC.SaveJob(userContext(c), subject(c), req.JobID); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"jobId": req.JobID, "saved": true})
}

// Status godoc
// @Summary      Whether a job is saved
// @Tags         saved-jobs
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200    {object}  map[string]interface{}
// @Router       /saved-jobs/{jobId} [get]
// @Security     BearerAuth
func (h *SavedJobHandler) Status(c *gin.Context) {
	saved, err := h.savedJobUC.IsSaved(userContext(c), subject(c), c.Param("jobId"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"jobId": c.Param("jobId"), "saved": saved})
}

// Unsave godoc
// @Summary      Remove a saved job
// @Description  Removing a job that is not saved succeeds.
// @Tags         saved-jobs
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200    {object}  map[string]interface{}
// @Router       /saved-jobs/{jobId} [delete]
// @Security     BearerAuth
func (h *SavedJobHandler) Unsave(c *gin.Context) {
	if err := h.savedJobUC.UnsaveJob(userContext(c), subject(c), c.Param("jobId")); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"jobId": c.Param("jobId"), "saved": false})
}
