package v1

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/internal/usecase"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	moderationUC domain.ModerationUsecase
	reportUC     domain.ReportUsecase
	authUC       domain.AuthUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, moderationUC domain.ModerationUsecase, reportUC domain.ReportUsecase, authUC domain.AuthUsecase) {
	handler := &AdminHandler{
		moderationUC: moderationUC,
		reportUC:     reportUC,
		authUC:       authUC,
	}

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	{
		admin.GET("/stats", handler.Dashboard)
		admin.GET("/moderation", handler.ModerationQueue)
		admin.POST("/moderate/:id", handler.Moderate)
		admin.POST("/bulk-moderation", handler.BulkModerate)
		admin.GET("/export", handler.Export)
		admin.PUT("/users/:id/role", handler.AssignRole)
	}
}

type ModerateRequest struct {
	Action          string `json:"action" binding:"required,oneof=approve reject flag delete"`
	ModerationNotes string `json:"moderation_notes"`
}

type BulkModerationRequest struct {
	BulkAction string  `json:"bulk_action" binding:"required,oneof=approve reject delete"`
	JobIDs     []int64 `json:"job_ids" binding:"required"`
}

type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=job_seeker recruiter admin"`
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, recentPending, err := h.moderationUC.Dashboard(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Admin dashboard", gin.H{
		"stats":          stats,
		"recent_pending": recentPending,
	})
}

func (h *AdminHandler) ModerationQueue(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	filter := domain.ModerationQueueFilter{
		Status:   c.DefaultQuery("status", "pending"),
		Search:   c.Query("search"),
		Page:     page,
		PageSize: 20,
	}

	jobs, total, err := h.moderationUC.Queue(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Moderation queue", gin.H{
		"jobs":  jobs,
		"total": total,
		"page":  filter.Page,
	})
}

func (h *AdminHandler) Moderate(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	adminID := c.GetInt64(string(domain.KeyUserID))

	if err := h.moderationUC.Moderate(c.Request.Context(), adminID, jobID, req.Action, req.ModerationNotes); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, fmt.Sprintf("Job posting has been %s", pastTense(req.Action)), nil)
}

func (h *AdminHandler) BulkModerate(c *gin.Context) {
	var req BulkModerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	adminID := c.GetInt64(string(domain.KeyUserID))

	count, err := h.moderationUC.BulkModerate(c.Request.Context(), adminID, req.JobIDs, req.BulkAction)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, fmt.Sprintf("%d job(s) have been %s", count, pastTense(req.BulkAction)), gin.H{
		"count": count,
	})
}

func pastTense(action string) string {
	switch action {
	case domain.ActionApprove:
		return "approved"
	case domain.ActionReject:
		return "rejected"
	case domain.ActionFlag:
		return "flagged"
	case domain.ActionDelete:
		return "deleted"
	}
	return action
}

func (h *AdminHandler) AssignRole(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.authUC.AssignRole(c.Request.Context(), userID, req.Role); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Role updated", nil)
}

// Export streams one of the three CSV reports as an attachment.
func (h *AdminHandler) Export(c *gin.Context) {
	switch c.DefaultQuery("type", domain.ExportJobs) {
	case domain.ExportJobs:
		h.exportJobs(c)
	case domain.ExportUsers:
		h.exportUsers(c)
	case domain.ExportAnalytics:
		h.exportAnalytics(c)
	default:
		c.Error(apperror.BadRequest("Invalid export type"))
	}
}

func beginCSV(c *gin.Context, filename string) *csv.Writer {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)
	return csv.NewWriter(c.Writer)
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func formatInt64Ptr(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func (h *AdminHandler) exportJobs(c *gin.Context) {
	jobs, err := h.reportUC.JobsReport(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	w := beginCSV(c, "job_postings_export.csv")
	defer w.Flush()

	_ = w.Write([]string{
		"ID", "Title", "Recruiter", "Description", "Required Skills", "Location",
		"Salary Min", "Salary Max", "Is Remote", "Visa Sponsorship", "Status",
		"Moderation Status", "Moderation Notes", "Created At", "Updated At",
		"Moderated By", "Moderated At",
	})

	for _, job := range jobs {
		recruiter := ""
		if job.RecruiterUsername != nil {
			recruiter = *job.RecruiterUsername
		}
		moderatedBy := ""
		if job.ModeratedByUsername != nil {
			moderatedBy = *job.ModeratedByUsername
		}

		_ = w.Write([]string{
			strconv.FormatInt(job.ID, 10),
			job.Title,
			recruiter,
			job.Description,
			job.RequiredSkills,
			job.Location,
			formatInt64Ptr(job.SalaryMin),
			formatInt64Ptr(job.SalaryMax),
			strconv.FormatBool(job.IsRemote),
			strconv.FormatBool(job.VisaSponsorship),
			usecase.DisplayLabel(job.Status),
			usecase.DisplayLabel(job.ModerationStatus),
			job.ModerationNotes,
			formatTime(job.CreatedAt),
			formatTime(job.UpdatedAt),
			moderatedBy,
			formatTimePtr(job.ModeratedAt),
		})
	}
}

func (h *AdminHandler) exportUsers(c *gin.Context) {
	users, err := h.reportUC.UsersReport(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	w := beginCSV(c, "users_export.csv")
	defer w.Flush()

	_ = w.Write([]string{
		"ID", "Username", "Email", "First Name", "Last Name", "User Type",
		"Is Active", "Is Staff", "Is Superuser", "Date Joined", "Last Login",
	})

	for _, user := range users {
		isAdmin := user.Role == domain.RoleAdmin

		_ = w.Write([]string{
			strconv.FormatInt(user.ID, 10),
			user.Username,
			user.Email,
			user.FirstName,
			user.LastName,
			usecase.DisplayLabel(user.Role),
			strconv.FormatBool(user.IsActive),
			strconv.FormatBool(isAdmin),
			strconv.FormatBool(isAdmin),
			formatTime(user.CreatedAt),
			formatTimePtr(user.LastLogin),
		})
	}
}

func (h *AdminHandler) exportAnalytics(c *gin.Context) {
	rows, err := h.reportUC.AnalyticsReport(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	w := beginCSV(c, "analytics_export.csv")
	defer w.Flush()

	_ = w.Write([]string{"Metric", "Count", "Percentage"})

	for _, row := range rows {
		_ = w.Write([]string{
			row.Metric,
			strconv.FormatInt(row.Count, 10),
			fmt.Sprintf("%.1f%%", row.Percentage),
		})
	}
}
