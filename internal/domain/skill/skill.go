package skill

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
)

const (
	CategoryProgramming = "Programming"
	CategoryFramework   = "Framework"
	CategoryDatabase    = "Database"
	CategoryTool        = "Tool"
	CategoryLanguage    = "Language"
	CategorySoftSkill   = "Soft Skill"
	CategoryOther       = "Other"
)

var Categories = []string{
	CategoryProgramming, CategoryFramework, CategoryDatabase,
	CategoryTool, CategoryLanguage, CategorySoftSkill, CategoryOther,
}

type Skill struct {
	ID                uuid.UUID `json:"id"`
	OwnerID           uuid.UUID `json:"owner_id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Proficiency       int       `json:"proficiency"`
	YearsOfExperience float64   `json:"yearsOfExperience"`
	Description       string    `json:"description"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Normalize trims whitespace from string fields before validation and storage.
func (s *Skill) Normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Category = strings.TrimSpace(s.Category)
	s.Description = strings.TrimSpace(s.Description)
}

func (s *Skill) Validate() error {
	var fields []apperror.FieldError

	if s.Name == "" {
		fields = append(fields, apperror.FieldError{Field: "name", Message: "Skill name is required"})
	} else if len(s.Name) > 50 {
		fields = append(fields, apperror.FieldError{Field: "name", Message: "Skill name cannot exceed 50 characters"})
	}
	if !validCategory(s.Category) {
		fields = append(fields, apperror.FieldError{Field: "category", Message: fmt.Sprintf("Category must be one of: %s", strings.Join(Categories, ", "))})
	}
	if s.Proficiency < 1 || s.Proficiency > 10 {
		fields = append(fields, apperror.FieldError{Field: "proficiency", Message: "Proficiency must be between 1 and 10"})
	}
	if s.YearsOfExperience < 0 {
		fields = append(fields, apperror.FieldError{Field: "yearsOfExperience", Message: "Years of experience cannot be negative"})
	}
	if len(s.Description) > 200 {
		fields = append(fields, apperror.FieldError{Field: "description", Message: "Description cannot exceed 200 characters"})
	}

	if len(fields) > 0 {
		return apperror.NewValidation(fields)
	}
	return nil
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ListFilter narrows List results. Nil predicates match everything.
type ListFilter struct {
	Category *string
}

const (
	SortByName        = "name"
	SortByProficiency = "proficiency"
	SortByCategory    = "category"
)

type Repository interface {
	Save(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Skill, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter ListFilter, sort string) ([]*Skill, error)
	ListTopByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*Skill, error)
	SearchByKeyword(ctx context.Context, ownerID uuid.UUID, keyword string, limit int) ([]*Skill, error)
}
