package work

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
)

const (
	EmploymentFullTime   = "full-time"
	EmploymentPartTime   = "part-time"
	EmploymentContract   = "contract"
	EmploymentInternship = "internship"
	EmploymentFreelance  = "freelance"
)

var EmploymentTypes = []string{
	EmploymentFullTime, EmploymentPartTime, EmploymentContract,
	EmploymentInternship, EmploymentFreelance,
}

type Work struct {
	ID               uuid.UUID  `json:"id"`
	OwnerID          uuid.UUID  `json:"owner_id"`
	Company          string     `json:"company"`
	Position         string     `json:"position"`
	Location         string     `json:"location"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	Current          bool       `json:"current"`
	Description      string     `json:"description"`
	Responsibilities []string   `json:"responsibilities"`
	Achievements     []string   `json:"achievements"`
	Skills           []string   `json:"skills"`
	EmploymentType   string     `json:"employmentType"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (w *Work) Normalize() {
	w.Company = strings.TrimSpace(w.Company)
	w.Position = strings.TrimSpace(w.Position)
	w.Location = strings.TrimSpace(w.Location)
	w.Description = strings.TrimSpace(w.Description)
	w.Responsibilities = trimAll(w.Responsibilities)
	w.Achievements = trimAll(w.Achievements)
	w.Skills = trimAll(w.Skills)
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}

func (w *Work) Validate() error {
	var fields []apperror.FieldError

	if w.Company == "" {
		fields = append(fields, apperror.FieldError{Field: "company", Message: "Company name is required"})
	} else if len(w.Company) > 100 {
		fields = append(fields, apperror.FieldError{Field: "company", Message: "Company name cannot exceed 100 characters"})
	}
	if w.Position == "" {
		fields = append(fields, apperror.FieldError{Field: "position", Message: "Position is required"})
	} else if len(w.Position) > 100 {
		fields = append(fields, apperror.FieldError{Field: "position", Message: "Position cannot exceed 100 characters"})
	}
	if w.StartDate == nil {
		fields = append(fields, apperror.FieldError{Field: "startDate", Message: "Start date is required"})
	}
	if len(w.Description) > 1000 {
		fields = append(fields, apperror.FieldError{Field: "description", Message: "Description cannot exceed 1000 characters"})
	}
	if !validEmploymentType(w.EmploymentType) {
		fields = append(fields, apperror.FieldError{Field: "employmentType", Message: fmt.Sprintf("Employment type must be one of: %s", strings.Join(EmploymentTypes, ", "))})
	}

	if len(fields) > 0 {
		return apperror.NewValidation(fields)
	}
	return nil
}

func validEmploymentType(t string) bool {
	for _, e := range EmploymentTypes {
		if e == t {
			return true
		}
	}
	return false
}

const (
	SortByStartDate = "startDate"
	SortByCompany   = "company"
)

type Repository interface {
	Save(ctx context.Context, w *Work) error
	Update(ctx context.Context, w *Work) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Work, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, sort string) ([]*Work, error)
	SearchByKeyword(ctx context.Context, ownerID uuid.UUID, keyword string, limit int) ([]*Work, error)
}
