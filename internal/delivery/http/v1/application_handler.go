package v1

import (
	"net/http"
	"strconv"

	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	seeker := protected.Group("")
	seeker.Use(middleware.RequireRole(domain.RoleJobSeeker))
	{
		seeker.POST("/jobs/:id/apply", handler.Apply)
		seeker.GET("/applications/mine", handler.ListMine)
	}

	recruiter := protected.Group("")
	recruiter.Use(middleware.RequireRole(domain.RoleRecruiter))
	{
		recruiter.GET("/jobs/:id/applications", handler.ListForJob)
	}
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

// Apply submits an application. Applying twice to the same posting is not
// an error: the second attempt reports the existing application.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	applicantID := c.GetInt64(string(domain.KeyUserID))

	app, alreadyApplied, err := h.applicationUC.Apply(c.Request.Context(), applicantID, jobID, req.CoverLetter)
	if err != nil {
		c.Error(err)
		return
	}
	if alreadyApplied {
		response.Success(c, http.StatusOK, "You have already applied to this job", nil)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	applicantID := c.GetInt64(string(domain.KeyUserID))

	apps, err := h.applicationUC.ListMine(c.Request.Context(), applicantID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Your applications", apps)
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	recruiterID := c.GetInt64(string(domain.KeyUserID))

	apps, err := h.applicationUC.ListForJob(c.Request.Context(), recruiterID, jobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications for job", apps)
}
