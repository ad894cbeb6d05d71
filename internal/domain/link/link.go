package link

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
)

var Platforms = []string{
	"github", "linkedin", "portfolio", "twitter", "instagram", "facebook",
	"youtube", "behance", "dribbble", "medium", "dev.to", "stackoverflow", "other",
}

type Link struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Platform    string    `json:"platform"`
	URL         string    `json:"url"`
	Label       string    `json:"label"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (l *Link) Normalize() {
	l.Platform = strings.TrimSpace(l.Platform)
	l.URL = strings.TrimSpace(l.URL)
	l.Label = strings.TrimSpace(l.Label)
	l.Description = strings.TrimSpace(l.Description)
}

func (l *Link) Validate() error {
	var fields []apperror.FieldError

	if !validPlatform(l.Platform) {
		fields = append(fields, apperror.FieldError{Field: "platform", Message: fmt.Sprintf("Platform must be one of: %s", strings.Join(Platforms, ", "))})
	}
	if l.URL == "" {
		fields = append(fields, apperror.FieldError{Field: "url", Message: "URL is required"})
	} else if !strings.HasPrefix(l.URL, "http://") && !strings.HasPrefix(l.URL, "https://") {
		fields = append(fields, apperror.FieldError{Field: "url", Message: "Please enter a valid URL starting with http:// or https://"})
	}
	if len(l.Label) > 50 {
		fields = append(fields, apperror.FieldError{Field: "label", Message: "Label cannot exceed 50 characters"})
	}
	if len(l.Description) > 200 {
		fields = append(fields, apperror.FieldError{Field: "description", Message: "Description cannot exceed 200 characters"})
	}

	if len(fields) > 0 {
		return apperror.NewValidation(fields)
	}
	return nil
}

func validPlatform(p string) bool {
	for _, v := range Platforms {
		if v == p {
			return true
		}
	}
	return false
}

type ListFilter struct {
	Platform *string
	IsPublic *bool
}

type Repository interface {
	Save(ctx context.Context, l *Link) error
	Update(ctx context.Context, l *Link) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Link, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*Link, error)
	SearchByKeyword(ctx context.Context, ownerID uuid.UUID, keyword string, limit int) ([]*Link, error)
}
