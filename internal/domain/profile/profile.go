package profile

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is the root persisted entity: one person's entire portfolio.
// Education, skills, projects, work and links live and die with it; none
// of them is addressable on its own.
type Profile struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Education []Education `json:"education"`
	Skills    []string    `json:"skills"`
	Projects  []Project   `json:"projects"`
	Work      []Work      `json:"work"`
	Links     Links       `json:"links"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type Education struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartYear   int    `json:"startYear,omitempty"`
	EndYear     int    `json:"endYear,omitempty"`
}

type Project struct {
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Links        ProjectLinks `json:"links"`
	Technologies []string     `json:"technologies"`
}

type ProjectLinks struct {
	GitHub string `json:"github,omitempty"`
	Demo   string `json:"demo,omitempty"`
	Other  string `json:"other,omitempty"`
}

type Work struct {
	Company   string     `json:"company,omitempty"`
	Position  string     `json:"position,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	// nil EndDate means the position is current.
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `json:"description,omitempty"`
}

type Links struct {
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Resume    string `json:"resume,omitempty"`
}

var (
	ErrNameRequired         = errors.New("name is required")
	ErrEmailRequired        = errors.New("email is required")
	ErrProjectTitleRequired = errors.New("project title is required")
)

// Normalize trims name and skill entries and lower-cases the email so that
// addresses differing only in case or surrounding whitespace collide on the
// unique index. Skill duplicates and casing are preserved as given. Nil
// collections become empty so the document always carries arrays.
func (p *Profile) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	if p.Education == nil {
		p.Education = []Education{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	if p.Work == nil {
		p.Work = []Work{}
	}
	for i, s := range p.Skills {
		p.Skills[i] = strings.TrimSpace(s)
	}
	for i, proj := range p.Projects {
		p.Projects[i].Title = strings.TrimSpace(proj.Title)
	}
}

// Validate runs the full schema-on-write rule set. Call after Normalize.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.Email == "" {
		return ErrEmailRequired
	}
	for _, proj := range p.Projects {
		if proj.Title == "" {
			return ErrProjectTitleRequired
		}
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, p *Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	FindAll(ctx context.Context) ([]*Profile, error)
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ViewCounter tracks best-effort per-profile fetch counts.
type ViewCounter interface {
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)
	Views(ctx context.Context, id uuid.UUID) (int64, error)
}

type EventType string

const (
	EventCreated EventType = "profile.created"
	EventUpdated EventType = "profile.updated"
	EventDeleted EventType = "profile.deleted"
)

type Event struct {
	Type      EventType `json:"type"`
	ProfileID uuid.UUID `json:"profile_id"`
	Email     string    `json:"email"`
	At        time.Time `json:"at"`
}

type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}
