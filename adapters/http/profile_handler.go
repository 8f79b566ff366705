package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	profileUC "github.com/namdhoang/portfolio-hub/internal/application/usecase/profile"
	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
	"github.com/namdhoang/portfolio-hub/pkg/apperror"
	"github.com/namdhoang/portfolio-hub/pkg/logger"
)

type ProfileHandler struct {
	createUseCase *profileUC.CreateProfileUseCase
	getUseCase    *profileUC.GetProfileUseCase
	listUseCase   *profileUC.ListProfilesUseCase
	updateUseCase *profileUC.UpdateProfileUseCase
	deleteUseCase *profileUC.DeleteProfileUseCase
	viewsUseCase  *profileUC.ProfileViewsUseCase
	logger        logger.Logger
}

func NewProfileHandler(
	create *profileUC.CreateProfileUseCase,
	get *profileUC.GetProfileUseCase,
	list *profileUC.ListProfilesUseCase,
	update *profileUC.UpdateProfileUseCase,
	del *profileUC.DeleteProfileUseCase,
	views *profileUC.ProfileViewsUseCase,
	log logger.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		createUseCase: create,
		getUseCase:    get,
		listUseCase:   list,
		updateUseCase: update,
		deleteUseCase: del,
		viewsUseCase:  views,
		logger:        log,
	}
}

func profileIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile id", err))
		return uuid.Nil, false
	}
	return id, true
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile create", err))
		return
	}

	input := profileUC.CreateProfileInput{
		Name:      req.Name,
		Email:     req.Email,
		Education: toDomainEducation(req.Education),
		Skills:    req.Skills,
		Projects:  toDomainProjects(req.Projects),
		Work:      toDomainWork(req.Work),
		Links: profile.Links{
			GitHub:    req.Links.GitHub,
			LinkedIn:  req.Links.LinkedIn,
			Portfolio: req.Links.Portfolio,
			Resume:    req.Links.Resume,
		},
	}
	output, err := h.createUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    output.Profile,
		"message": "Profile created successfully",
	})
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := profileIDParam(c)
	if !ok {
		return
	}

	output, err := h.getUseCase.Execute(c.Request.Context(), profileUC.GetProfileInput{ID: id})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": output.Profile})
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	output, err := h.listUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(output.Profiles),
		"data":    output.Profiles,
	})
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	id, ok := profileIDParam(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	input := profileUC.UpdateProfileInput{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
	}
	if req.Education != nil {
		education := toDomainEducation(*req.Education)
		input.Education = &education
	}
	if req.Skills != nil {
		input.Skills = req.Skills
	}
	if req.Projects != nil {
		projects := toDomainProjects(*req.Projects)
		input.Projects = &projects
	}
	if req.Work != nil {
		work := toDomainWork(*req.Work)
		input.Work = &work
	}
	if req.Links != nil {
		links := profile.Links{
			GitHub:    req.Links.GitHub,
			LinkedIn:  req.Links.LinkedIn,
			Portfolio: req.Links.Portfolio,
			Resume:    req.Links.Resume,
		}
		input.Links = &links
	}

	output, err := h.updateUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    output.Profile,
		"message": "Profile updated successfully",
	})
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id, ok := profileIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), profileUC.DeleteProfileInput{ID: id}); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile deleted successfully",
	})
}

func (h *ProfileHandler) GetProfileViews(c *gin.Context) {
	id, ok := profileIDParam(c)
	if !ok {
		return
	}

	output, err := h.viewsUseCase.Execute(c.Request.Context(), profileUC.ProfileViewsInput{ID: id})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"profileId": output.ProfileID,
			"views":     output.Views,
		},
	})
}
