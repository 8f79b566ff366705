package http

import (
	"time"

	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
)

// Profile DTOs. Field names follow the wire format the browser client
// consumes (camelCase).

type EducationDTO struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartYear   int    `json:"startYear,omitempty"`
	EndYear     int    `json:"endYear,omitempty"`
}

type ProjectLinksDTO struct {
	GitHub string `json:"github,omitempty"`
	Demo   string `json:"demo,omitempty"`
	Other  string `json:"other,omitempty"`
}

type ProjectDTO struct {
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	Links        ProjectLinksDTO `json:"links"`
	Technologies []string        `json:"technologies"`
}

type WorkDTO struct {
	Company     string     `json:"company,omitempty"`
	Position    string     `json:"position,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `json:"description,omitempty"`
}

type LinksDTO struct {
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Resume    string `json:"resume,omitempty"`
}

type CreateProfileRequest struct {
	Name      string         `json:"name" binding:"required"`
	Email     string         `json:"email" binding:"required"`
	Education []EducationDTO `json:"education"`
	Skills    []string       `json:"skills"`
	Projects  []ProjectDTO   `json:"projects"`
	Work      []WorkDTO      `json:"work"`
	Links     LinksDTO       `json:"links"`
}

// UpdateProfileRequest is a partial payload: absent fields stay untouched.
type UpdateProfileRequest struct {
	Name      *string         `json:"name"`
	Email     *string         `json:"email"`
	Education *[]EducationDTO `json:"education"`
	Skills    *[]string       `json:"skills"`
	Projects  *[]ProjectDTO   `json:"projects"`
	Work      *[]WorkDTO      `json:"work"`
	Links     *LinksDTO       `json:"links"`
}

func toDomainEducation(in []EducationDTO) []profile.Education {
	out := make([]profile.Education, len(in))
	for i, e := range in {
		out[i] = profile.Education(e)
	}
	return out
}

func toDomainProjects(in []ProjectDTO) []profile.Project {
	out := make([]profile.Project, len(in))
	for i, p := range in {
		out[i] = profile.Project{
			Title:        p.Title,
			Description:  p.Description,
			Links:        profile.ProjectLinks(p.Links),
			Technologies: p.Technologies,
		}
	}
	return out
}

func toDomainWork(in []WorkDTO) []profile.Work {
	out := make([]profile.Work, len(in))
	for i, w := range in {
		out[i] = profile.Work(w)
	}
	return out
}
