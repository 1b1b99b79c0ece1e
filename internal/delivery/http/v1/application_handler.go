package v1

import (
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers the application routes. Reads need a token:
// candidates see their own applications, recruiters those for their jobs.
func NewApplicationHandler(protected, candidate, recruiter *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	protected.GET("/applications", handler.List)
	protected.GET("/applications/:id", handler.Get)

	candidate.POST("/applications", handler.Submit)
	candidate.DELETE("/applications/:id", handler.Withdraw)

	recruiter.PATCH("/applications/:id", handler.SetStatus)
}

// SubmitApplicationRequest is the body of POST /applications.
type SubmitApplicationRequest struct {
	JobID  string `json:"jobId" binding:"required"`
	UserID string `json:"userId" binding:"required"`
	domain.ApplicationPayload
}

type SetStatusRequest struct {
	Status   string  `json:"status"`
	Feedback *string `json:"feedback"`
}

// List godoc
// @Summary      List applications
// @Description  Filter by userId (the caller's own applications) or jobId (applicants of the caller's job).
// @Tags         applications
// @Produce      json
// @Param        userId  query     string  false  "Candidate id"
// @Param        jobId   query     string  false  "Job id"
// @Success      200     {object}  map[string]interface{}
// @Failure      400     {object}  response.ErrorResponse
// @Failure      401     {object}  response.ErrorResponse
// @Failure      403     {object}  response.ErrorResponse
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	filter := domain.ApplicationFilter{
		UserID: strings.TrimSpace(c.Query("userId")),
		JobID:  strings.TrimSpace(c.Query("jobId")),
	}
	apps, err := h.applicationUC.ListApplications(userContext(c), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"applications": apps})
}

// Get godoc
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.applicationUC.GetApplication(userContext(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"application": app})
}

// Submit godoc
// @Summary      Apply to a job
// @Description  One application per candidate and job. userId must be the caller.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      SubmitApplicationRequest  true  "Application JSON"
// @Success      201          {object}  map[string]interface{}
// @Failure      400          {object}  response.ErrorResponse
// @Failure      404          {object}  response.ErrorResponse
// @Failure      409          {object}  response.ErrorResponse
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	app, err := h.applicationUC.Submit(userContext(c), req.JobID, req.UserID, req.ApplicationPayload)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"application": app})
}

// SetStatus godoc
// @Summary      Change an application's status
// @Description  Any of Pending, Reviewed, Interview, Accepted, Rejected, in any order.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      string            true  "Application ID"
// @Param        status  body      SetStatusRequest  true  "New status"
// @Success      200     {object}  map[string]interface{}
// @Failure      400     {object}  response.ErrorResponse
// @Failure      404     {object}  response.ErrorResponse
// @Router       /applications/{id} [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		_ = c.Error(apperror.Validation("Status is required"))
		return
	}

	app, err := h.applicationUC.SetStatus(userContext(c), c.Param("id"), req.Status, req.Feedback)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"application": app})
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Tags         applications
// @Produce      json
// @Param        id   path      string  true  "Application ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	if err := h.applicationUC.Withdraw(userContext(c), c.Param("id"), subject(c)); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Application withdrawn"})
}
