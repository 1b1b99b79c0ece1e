package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/jobsearch"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public, recruiter *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	public.GET("/jobs", handler.List)
	public.GET("/jobs/:id", handler.Get)

	jobs := recruiter.Group("/jobs")
	{
		jobs.POST("", handler.Create)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
		jobs.POST("/:id/recount", handler.Recount)
	}
}

// CreateJobRequest is the body of POST /jobs.
type CreateJobRequest struct {
	Title               string             `json:"title"`
	Company             string             `json:"company"`
	CompanyLogo         string             `json:"companyLogo"`
	Location            string             `json:"location"`
	Type                string             `json:"type" binding:"omitempty,job_type"`
	Salary              string             `json:"salary"`
	SalaryRange         domain.SalaryRange `json:"salaryRange"`
	Description         string             `json:"description"`
	Requirements        string             `json:"requirements"`
	Benefits            string             `json:"benefits"`
	Tags                []string           `json:"tags"`
	Experience          string             `json:"experience"`
	Education           string             `json:"education"`
	ApplicationDeadline string             `json:"applicationDeadline"`
	Status              string             `json:"status" binding:"omitempty,job_status"`
	PostedBy            string             `json:"postedBy"`
}

// List godoc
// @Summary      List jobs
// @Description  Without recruiterId only Active jobs are listed; with it, all of that recruiter's jobs.
// @Tags         jobs
// @Produce      json
// @Param        recruiterId  query     string    false  "Poster id"
// @Param        search       query     string    false  "Case-insensitive substring of title, company or any tag"
// @Param        location     query     string    false  "Location substring"
// @Param        type         query     string    false  "Job type or 'all'"
// @Param        experience   query     []string  false  "Experience levels"  collectionFormat(multi)
// @Param        salary       query     []string  false  "Salary buckets range1..range4"  collectionFormat(multi)
// @Param        sort         query     string    false  "relevance, recent, salary-high or salary-low"
// @Param        page         query     int       false  "Page, default 1"
// @Param        page_size    query     int       false  "Page size, default 20, max 100"
// @Success      200  {object}  jobsearch.Page
// @Failure      400  {object}  response.ErrorResponse
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	filter := domain.JobFilter{Status: domain.JobStatusActive}
	if recruiterID := strings.TrimSpace(c.Query("recruiterId")); recruiterID != "" {
		filter = domain.JobFilter{PostedBy: recruiterID}
	}

	params, err := queryParams(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("page_size"))
	result := jobsearch.Paginate(jobsearch.Query(jobs, params), page, pageSize)

	response.Success(c, http.StatusOK, gin.H{
		"jobs":     result.Jobs,
		"total":    result.Total,
		"page":     result.Page,
		"pageSize": result.PageSize,
	})
}

func queryParams(c *gin.Context) (jobsearch.Params, error) {
	p := jobsearch.Params{
		SearchTerm:  c.Query("search"),
		Location:    c.Query("location"),
		JobType:     c.Query("type"),
		Experience:  c.QueryArray("experience"),
		SalaryRange: c.QueryArray("salary"),
		SortBy:      c.DefaultQuery("sort", jobsearch.SortRelevance),
	}
	switch p.SortBy {
	case jobsearch.SortRelevance, jobsearch.SortRecent, jobsearch.SortSalaryHigh, jobsearch.SortSalaryLow:
	default:
		return p, apperror.Validation("sort must be one of: relevance, recent, salary-high, salary-low")
	}
	for _, id := range p.SalaryRange {
		if !jobsearch.IsValidSalaryBucket(id) {
			return p, apperror.Validation("Unknown salary range: " + id)
		}
	}
	return p, nil
}

// Get godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.ErrorResponse
// @Router       /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobUC.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"job": job})
}

// Create godoc
// @Summary      Post a job
// @Description  postedBy must be the calling recruiter.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	job := &domain.Job{
		Title:               req.Title,
		Company:             req.Company,
		CompanyLogo:         req.CompanyLogo,
		Location:            req.Location,
		Type:                req.Type,
		Salary:              req.Salary,
		SalaryRange:         req.SalaryRange,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Benefits:            req.Benefits,
		Tags:                req.Tags,
		Experience:          req.Experience,
		Education:           req.Education,
		ApplicationDeadline: req.ApplicationDeadline,
		Status:              req.Status,
		PostedBy:            req.PostedBy,
	}
	if err := h.jobUC.CreateJob(userContext(c), job); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"job": job})
}

// Update godoc
// @Summary      Update a job
// @Description  Only the supplied fields change.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Job ID"
// @Param        job   body      domain.JobPatch  true  "Fields to change"
// @Success      200   {object}  map[string]interface{}
// @Failure      403   {object}  response.ErrorResponse
// @Failure      404   {object}  response.ErrorResponse
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	var patch domain.JobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	job, err := h.jobUC.UpdateJob(userContext(c), c.Param("id"), &patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"job": job})
}

// Delete godoc
// @Summary      Delete a job
// @Description  Also removes its applications. Deleting a missing job succeeds.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      403  {object}  response.ErrorResponse
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.DeleteJob(userContext(c), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Job deleted"})
}

// Recount godoc
// @Summary      Recount applicants
// @Description  Resets the applicants counter from the stored applications.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.ErrorResponse
// @Router       /jobs/{id}/recount [post]
// @Security     BearerAuth
func (h *JobHandler) Recount(c *gin.Context) {
	job, err := h.jobUC.RecountApplicants(userContext(c), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"job": job})
}
