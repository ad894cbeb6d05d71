package profile

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
)

// Education is an embedded sub-document owned by its profile.
type Education struct {
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	Field       string     `json:"field"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Current     bool       `json:"current"`
	Description string     `json:"description"`
}

// Profile is a singleton per owner.
type Profile struct {
	ID        uuid.UUID   `json:"id"`
	OwnerID   uuid.UUID   `json:"owner_id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Title     string      `json:"title"`
	Bio       string      `json:"bio"`
	Location  string      `json:"location"`
	Phone     string      `json:"phone"`
	Website   string      `json:"website"`
	Education []Education `json:"education"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func (p *Profile) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Title = strings.TrimSpace(p.Title)
	p.Bio = strings.TrimSpace(p.Bio)
	p.Location = strings.TrimSpace(p.Location)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Website = strings.TrimSpace(p.Website)
	for i := range p.Education {
		p.Education[i].Institution = strings.TrimSpace(p.Education[i].Institution)
		p.Education[i].Degree = strings.TrimSpace(p.Education[i].Degree)
		p.Education[i].Field = strings.TrimSpace(p.Education[i].Field)
		p.Education[i].Description = strings.TrimSpace(p.Education[i].Description)
	}
}

func (p *Profile) Validate() error {
	var fields []apperror.FieldError

	if len(p.Name) < 2 {
		fields = append(fields, apperror.FieldError{Field: "name", Message: "Name must be at least 2 characters"})
	}
	if p.Email == "" {
		fields = append(fields, apperror.FieldError{Field: "email", Message: "Email is required"})
	} else if _, err := mail.ParseAddress(p.Email); err != nil {
		fields = append(fields, apperror.FieldError{Field: "email", Message: "Please enter a valid email"})
	}

	if len(fields) > 0 {
		return apperror.NewValidation(fields)
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, ownerID uuid.UUID) error
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*Profile, error)
	// FindMatching returns the owner's profile when the keyword matches its
	// name, email, title, bio, location or an education sub-field; nil when
	// no profile matches.
	FindMatching(ctx context.Context, ownerID uuid.UUID, keyword string) (*Profile, error)
}
