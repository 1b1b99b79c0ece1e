package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(public, recruiter *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	public.GET("/companies", handler.List)
	public.GET("/companies/:id", handler.Get)
	recruiter.POST("/companies", handler.Create)
	recruiter.PUT("/companies/:id", handler.Update)
	recruiter.DELETE("/companies/:id", handler.Delete)
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.companyUC.ListCompanies(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"companies": companies})
}

// Get godoc
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.ErrorResponse
// @Router       /companies/{id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companyUC.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"company": company})
}

// Create godoc
// @Summary      Add a company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company  body      domain.Company  true  "Company JSON"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorResponse
// @Router       /companies [post]
// @Security     BearerAuth
func (h *CompanyHandler) Create(c *gin.Context) {
	var company domain.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	if err := h.companyUC.CreateCompany(c.Request.Context(), &company); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"company": company})
}

// Update godoc
// @Summary      Update a company
// @Description  Only the supplied fields change.
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Company ID"
// @Param        company  body      domain.CompanyPatch  true  "Fields to change"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorResponse
// @Failure      404      {object}  response.ErrorResponse
// @Router       /companies/{id} [put]
// @Security     BearerAuth
func (h *CompanyHandler) Update(c *gin.Context) {
	var patch domain.CompanyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		_ = c.Error(bindError(err))
		return
	}
	company, err := h.companyUC.UpdateCompany(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"company": company})
}

// Delete godoc
// @Summary      Delete a company
// @Tags         companies
// @Produce      json
// @Param        id   path      string  true  "Company ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.ErrorResponse
// @Router       /companies/{id} [delete]
// @Security     BearerAuth
func (h *CompanyHandler) Delete(c *gin.Context) {
	if err := h.companyUC.DeleteCompany(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Company deleted"})
}
