package project

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
)

func validProject() *Project {
	return &Project{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		Title:       "Portfolio API",
		Description: "A REST API for managing a personal portfolio.",
		Status:      StatusCompleted,
	}
}

func fieldMessages(t *testing.T, err error) map[string]string {
	t.Helper()
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	out := make(map[string]string)
	for _, f := range appErr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func Test_Validate_ValidProject(t *testing.T) {
	assert.NoError(t, validProject().Validate())
}

func Test_Validate_TitleAndDescriptionBounds(t *testing.T) {
	p := validProject()
	p.Title = ""
	p.Description = "too short"

	err := p.Validate()
	require.Error(t, err)

	fields := fieldMessages(t, err)
	assert.Equal(t, "Project title is required", fields["title"])
	assert.Equal(t, "Description must be at least 10 characters", fields["description"])

	p = validProject()
	p.Title = strings.Repeat("t", 101)
	p.Description = strings.Repeat("d", 1001)

	fields = fieldMessages(t, p.Validate())
	assert.Equal(t, "Title cannot exceed 100 characters", fields["title"])
	assert.Equal(t, "Description cannot exceed 1000 characters", fields["description"])
}

func Test_Validate_StatusEnum(t *testing.T) {
	for _, status := range Statuses {
		p := validProject()
		p.Status = status
		assert.NoError(t, p.Validate())
	}

	p := validProject()
	p.Status = "abandoned"
	fields := fieldMessages(t, p.Validate())
	assert.Contains(t, fields["status"], "Status must be one of")
}

func Test_Validate_LinksReportIndexedFields(t *testing.T) {
	p := validProject()
	p.Links = []ProjectLink{
		{Type: LinkTypeGithub, URL: "https://github.com/example/repo"},
		{Type: "blog", URL: ""},
	}

	err := p.Validate()
	require.Error(t, err)

	fields := fieldMessages(t, err)
	assert.Contains(t, fields["links[1].type"], "Link type must be one of")
	assert.Equal(t, "Link URL is required", fields["links[1].url"])
	assert.NotContains(t, fields, "links[0].type")
}

func Test_Normalize_TrimsNestedFields(t *testing.T) {
	p := validProject()
	p.Title = "  Portfolio API  "
	p.Skills = []string{" Go ", "Postgres"}
	p.Links = []ProjectLink{{Type: LinkTypeLive, URL: " https://example.com ", Label: " Site "}}

	p.Normalize()

	assert.Equal(t, "Portfolio API", p.Title)
	assert.Equal(t, []string{"Go", "Postgres"}, p.Skills)
	assert.Equal(t, "https://example.com", p.Links[0].URL)
	assert.Equal(t, "Site", p.Links[0].Label)
}
