package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	queryUC "github.com/namdhoang/portfolio-hub/internal/application/usecase/query"
	"github.com/namdhoang/portfolio-hub/pkg/apperror"
	"github.com/namdhoang/portfolio-hub/pkg/logger"
)

type QueryHandler struct {
	listProjectsUseCase *queryUC.ListProjectsUseCase
	topSkillsUseCase    *queryUC.TopSkillsUseCase
	searchUseCase       *queryUC.SearchProfilesUseCase
	logger              logger.Logger
}

func NewQueryHandler(
	listProjects *queryUC.ListProjectsUseCase,
	topSkills *queryUC.TopSkillsUseCase,
	search *queryUC.SearchProfilesUseCase,
	log logger.Logger,
) *QueryHandler {
	return &QueryHandler{
		listProjectsUseCase: listProjects,
		topSkillsUseCase:    topSkills,
		searchUseCase:       search,
		logger:              log,
	}
}

func (h *QueryHandler) ListProjects(c *gin.Context) {
	skill := c.Query("skill")

	output, err := h.listProjectsUseCase.Execute(c.Request.Context(), queryUC.ListProjectsInput{Skill: skill})
	if err != nil {
		c.Error(err)
		return
	}

	filter := "all"
	if skill != "" {
		filter = "skill=" + skill
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(output.Projects),
		"filter":  filter,
		"data":    output.Projects,
	})
}

func (h *QueryHandler) TopSkills(c *gin.Context) {
	// Absent or unparseable limit falls back to the default.
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		limit = 10
	}

	output, err := h.topSkillsUseCase.Execute(c.Request.Context(), queryUC.TopSkillsInput{Limit: limit})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(output.Skills),
		"data":    output.Skills,
	})
}

func (h *QueryHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.Error(apperror.NewInvalidInput("query parameter 'q' is required", nil))
		return
	}

	output, err := h.searchUseCase.Execute(c.Request.Context(), queryUC.SearchProfilesInput{Query: q})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"query":   q,
		"count":   len(output.Profiles),
		"data":    output.Profiles,
	})
}
