package v1

import (
	"net/http"
	"strconv"

	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// PUBLIC routes - only active+approved postings are reachable here,
	// enforced server-side.
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("/search", handler.Search)
		publicJobs.GET("/:id", handler.GetPublicDetails)
	}

	// Recruiter-owned posting management
	jobs := protected.Group("/jobs")
	jobs.Use(middleware.RequireRole(domain.RoleRecruiter))
	{
		jobs.POST("", handler.Create)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}

	recruiter := protected.Group("/recruiter")
	recruiter.Use(middleware.RequireRole(domain.RoleRecruiter))
	{
		recruiter.GET("/jobs", handler.ListOwn)
	}
}

type JobPostingRequest struct {
	Title           string `json:"title" binding:"required,max=255"`
	Description     string `json:"description" binding:"required"`
	RequiredSkills  string `json:"required_skills" binding:"required"`
	Location        string `json:"location" binding:"required,max=255"`
	SalaryMin       *int64 `json:"salary_min"`
	SalaryMax       *int64 `json:"salary_max"`
	IsRemote        bool   `json:"is_remote"`
	VisaSponsorship bool   `json:"visa_sponsorship"`
	Status          string `json:"status" binding:"omitempty,oneof=active inactive removed"`
}

// Search lists publicly visible postings. Every filter parameter is
// optional and only narrows the result; malformed salary_min is ignored.
func (h *JobHandler) Search(c *gin.Context) {
	filter := usecase.ParseSearchFilter(
		c.Query("title"),
		c.Query("location"),
		c.Query("skills"),
		c.Query("salary_min"),
		c.Query("is_remote"),
		c.Query("visa_sponsorship"),
	)

	jobs, err := h.jobUC.Search(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job search results", gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

func (h *JobHandler) GetPublicDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	job, err := h.jobUC.GetPublicPosting(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", job)
}

func (h *JobHandler) Create(c *gin.Context) {
	var req JobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	recruiterID := c.GetInt64(string(domain.KeyUserID))

	job := &domain.JobPosting{
		Title:           req.Title,
		Description:     req.Description,
		RequiredSkills:  req.RequiredSkills,
		Location:        req.Location,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		IsRemote:        req.IsRemote,
		VisaSponsorship: req.VisaSponsorship,
	}

	if err := h.jobUC.CreatePosting(c.Request.Context(), recruiterID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posting created", job)
}

func (h *JobHandler) ListOwn(c *gin.Context) {
	recruiterID := c.GetInt64(string(domain.KeyUserID))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	jobs, total, err := h.jobUC.ListByRecruiter(c.Request.Context(), recruiterID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Your job postings", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req JobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	recruiterID := c.GetInt64(string(domain.KeyUserID))

	job := &domain.JobPosting{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		RequiredSkills:  req.RequiredSkills,
		Location:        req.Location,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		IsRemote:        req.IsRemote,
		VisaSponsorship: req.VisaSponsorship,
		Status:          req.Status,
	}

	if err := h.jobUC.UpdatePosting(c.Request.Context(), recruiterID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job posting updated", job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	recruiterID := c.GetInt64(string(domain.KeyUserID))

	if err := h.jobUC.DeletePosting(c.Request.Context(), recruiterID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job posting deleted", nil)
}
