package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/middleware"
	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profile := protected.Group("/profile")
	profile.Use(middleware.RequireRole(domain.RoleJobSeeker))
	{
		profile.GET("", handler.Get)
		profile.PUT("", handler.Save)
	}
}

type SaveProfileRequest struct {
	Headline       string   `json:"headline" binding:"max=255"`
	Skills         []string `json:"skills"`
	Education      string   `json:"education"`
	WorkExperience string   `json:"work_experience"`
	Links          string   `json:"links"`
	Phone          string   `json:"phone"`

	ProfileVisible     *bool `json:"profile_visible"`
	ShowEmail          *bool `json:"show_email"`
	ShowPhone          *bool `json:"show_phone"`
	ShowSkills         *bool `json:"show_skills"`
	ShowEducation      *bool `json:"show_education"`
	ShowWorkExperience *bool `json:"show_work_experience"`
	ShowLinks          *bool `json:"show_links"`
	AllowContact       *bool `json:"allow_contact"`
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	profile, err := h.profileUC.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}

// Save creates the profile on first submission and updates it afterwards.
// Omitted visibility flags keep their defaults: everything visible except
// the phone number, with recruiter contact allowed.
func (h *ProfileHandler) Save(c *gin.Context) {
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	boolOr := func(v *bool, fallback bool) bool {
		if v != nil {
			return *v
		}
		return fallback
	}

	profile := &domain.JobSeekerProfile{
		Headline:       req.Headline,
		Skills:         req.Skills,
		Education:      req.Education,
		WorkExperience: req.WorkExperience,
		Links:          req.Links,
		Phone:          req.Phone,

		ProfileVisible:     boolOr(req.ProfileVisible, true),
		ShowEmail:          boolOr(req.ShowEmail, true),
		ShowPhone:          boolOr(req.ShowPhone, false),
		ShowSkills:         boolOr(req.ShowSkills, true),
		ShowEducation:      boolOr(req.ShowEducation, true),
		ShowWorkExperience: boolOr(req.ShowWorkExperience, true),
		ShowLinks:          boolOr(req.ShowLinks, true),
		AllowContact:       boolOr(req.AllowContact, true),
	}

	if err := h.profileUC.SaveProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved successfully", profile)
}
