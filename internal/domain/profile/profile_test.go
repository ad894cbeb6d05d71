package profile

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saikrishna-79/portfolio-pro/pkg/apperror"
)

func validProfile() *Profile {
	return &Profile{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Name:    "Jamie Doe",
		Email:   "jamie@example.com",
	}
}

func Test_Validate_ValidProfile(t *testing.T) {
	assert.NoError(t, validProfile().Validate())
}

func Test_Validate_NameAndEmail(t *testing.T) {
	p := validProfile()
	p.Name = "J"
	p.Email = ""

	err := p.Validate()
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	require.Len(t, appErr.Fields, 2)
	assert.Equal(t, "Name must be at least 2 characters", appErr.Fields[0].Message)
	assert.Equal(t, "Email is required", appErr.Fields[1].Message)
}

func Test_Validate_MalformedEmail(t *testing.T) {
	p := validProfile()
	p.Email = "not-an-email"

	err := p.Validate()
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "Please enter a valid email", appErr.Fields[0].Message)
}

func Test_Normalize_TrimsEducation(t *testing.T) {
	p := validProfile()
	p.Name = "  Jamie Doe  "
	p.Education = []Education{{Institution: " State University ", Degree: " BSc "}}

	p.Normalize()

	assert.Equal(t, "Jamie Doe", p.Name)
	assert.Equal(t, "State University", p.Education[0].Institution)
	assert.Equal(t, "BSc", p.Education[0].Degree)
}
