// Package query defines the read views derived from the profile collection:
// the flattened project listing, the ranked skill-frequency table, and
// free-text profile search.
package query

import (
	"context"

	"github.com/google/uuid"

	"github.com/namdhoang/portfolio-hub/internal/domain/profile"
)

// ProfileProjects is the per-profile projection the flattened project
// listing is built from, in stored (insertion) order.
type ProfileProjects struct {
	ProfileID   uuid.UUID
	ProfileName string
	Projects    []profile.Project
}

// FlatProject is one project joined to its owning profile's name and id.
type FlatProject struct {
	Title        string               `json:"title"`
	Description  string               `json:"description,omitempty"`
	Links        profile.ProjectLinks `json:"links"`
	Technologies []string             `json:"technologies"`
	ProfileName  string               `json:"profileName"`
	ProfileID    uuid.UUID            `json:"profileId"`
}

// SkillCount is one row of the skill-frequency table. Skill keys are
// case-sensitive exact stored values.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type Repository interface {
	// ListProfileProjects scans every profile in insertion order.
	ListProfileProjects(ctx context.Context) ([]ProfileProjects, error)

	// TopSkills counts skill occurrences across all profiles and returns at
	// most limit entries, ordered by count descending. Tie order is whatever
	// the store produces.
	TopSkills(ctx context.Context, limit int) ([]SkillCount, error)

	// SearchProfiles returns profiles where q appears as a case-insensitive
	// literal substring in name, email, any skill, or any project title or
	// description, in storage order.
	SearchProfiles(ctx context.Context, q string) ([]*profile.Profile, error)
}
