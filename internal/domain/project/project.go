package project

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
)

const (
	StatusPlanning   = "planning"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusOnHold     = "on-hold"
)

var Statuses = []string{StatusPlanning, StatusInProgress, StatusCompleted, StatusOnHold}

const (
	LinkTypeGithub        = "github"
	LinkTypeLive          = "live"
	LinkTypeDemo          = "demo"
	LinkTypeDocumentation = "documentation"
	LinkTypeOther         = "other"
)

var LinkTypes = []string{LinkTypeGithub, LinkTypeLive, LinkTypeDemo, LinkTypeDocumentation, LinkTypeOther}

// ProjectLink is an embedded sub-document owned by its project; it has no
// identity or lifecycle of its own.
type ProjectLink struct {
	Type  string `json:"type"`
	URL   string `json:"url"`
	Label string `json:"label"`
}

type Project struct {
	ID           uuid.UUID     `json:"id"`
	OwnerID      uuid.UUID     `json:"owner_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Skills       []string      `json:"skills"`
	Technologies []string      `json:"technologies"`
	Links        []ProjectLink `json:"links"`
	Status       string        `json:"status"`
	StartDate    *time.Time    `json:"startDate"`
	EndDate      *time.Time    `json:"endDate"`
	Featured     bool          `json:"featured"`
	ImageURL     string        `json:"imageUrl"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func (p *Project) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	p.Skills = trimAll(p.Skills)
	p.Technologies = trimAll(p.Technologies)
	for i := range p.Links {
		p.Links[i].URL = strings.TrimSpace(p.Links[i].URL)
		p.Links[i].Label = strings.TrimSpace(p.Links[i].Label)
	}
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

func (p *Project) Validate() error {
	var fields []apperror.FieldError

	if p.Title == "" {
		fields = append(fields, apperror.FieldError{Field: "title", Message: "Project title is required"})
	} else if len(p.Title) > 100 {
		fields = append(fields, apperror.FieldError{Field: "title", Message: "Title cannot exceed 100 characters"})
	}
	if len(p.Description) < 10 {
		fields = append(fields, apperror.FieldError{Field: "description", Message: "Description must be at least 10 characters"})
	} else if len(p.Description) > 1000 {
		fields = append(fields, apperror.FieldError{Field: "description", Message: "Description cannot exceed 1000 characters"})
	}
	if !contains(Statuses, p.Status) {
		fields = append(fields, apperror.FieldError{Field: "status", Message: fmt.Sprintf("Status must be one of: %s", strings.Join(Statuses, ", "))})
	}
	for i, l := range p.Links {
		if !contains(LinkTypes, l.Type) {
			fields = append(fields, apperror.FieldError{Field: fmt.Sprintf("links[%d].type", i), Message: fmt.Sprintf("Link type must be one of: %s", strings.Join(LinkTypes, ", "))})
		}
		if l.URL == "" {
			fields = append(fields, apperror.FieldError{Field: fmt.Sprintf("links[%d].url", i), Message: "Link URL is required"})
		}
	}

	if len(fields) > 0 {
		return apperror.NewValidation(fields)
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// ListFilter narrows List results. Skill is exact set membership against
// the project's skills list, not a substring match.
type ListFilter struct {
	Skill    *string
	Status   *string
	Featured *bool
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter ListFilter, limit, offset int) ([]*Project, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID, filter ListFilter) (int, error)
	SearchByKeyword(ctx context.Context, ownerID uuid.UUID, keyword string, limit int) ([]*Project, error)
}
