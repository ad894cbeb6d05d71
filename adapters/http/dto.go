package http

import (
	"time"

	"github.com/saikrishna-79/portfolio-pro/internal/domain/profile"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/project"
)

// Request bodies. Optional fields are pointers so an absent key is
// distinguishable from a zero value, which is what partial updates rely on.

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type createProfileRequest struct {
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Title     string              `json:"title"`
	Bio       string              `json:"bio"`
	Location  string              `json:"location"`
	Phone     string              `json:"phone"`
	Website   string              `json:"website"`
	Education []profile.Education `json:"education"`
}

type updateProfileRequest struct {
	Name      *string             `json:"name"`
	Email     *string             `json:"email"`
	Title     *string             `json:"title"`
	Bio       *string             `json:"bio"`
	Location  *string             `json:"location"`
	Phone     *string             `json:"phone"`
	Website   *string             `json:"website"`
	Education []profile.Education `json:"education"`
}

type createSkillRequest struct {
	Name              string  `json:"name"`
	Category          *string `json:"category"`
	Proficiency       int     `json:"proficiency"`
	YearsOfExperience float64 `json:"yearsOfExperience"`
	Description       string  `json:"description"`
	IsActive          *bool   `json:"isActive"`
}

type updateSkillRequest struct {
	Name              *string  `json:"name"`
	Category          *string  `json:"category"`
	Proficiency       *int     `json:"proficiency"`
	YearsOfExperience *float64 `json:"yearsOfExperience"`
	Description       *string  `json:"description"`
	IsActive          *bool    `json:"isActive"`
}

type createProjectRequest struct {
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Skills       []string              `json:"skills"`
	Technologies []string              `json:"technologies"`
	Links        []project.ProjectLink `json:"links"`
	Status       *string               `json:"status"`
	StartDate    *time.Time            `json:"startDate"`
	EndDate      *time.Time            `json:"endDate"`
	Featured     bool                  `json:"featured"`
	ImageURL     string                `json:"imageUrl"`
}

type updateProjectRequest struct {
	Title        *string               `json:"title"`
	Description  *string               `json:"description"`
	Skills       []string              `json:"skills"`
	Technologies []string              `json:"technologies"`
	Links        []project.ProjectLink `json:"links"`
	Status       *string               `json:"status"`
	StartDate    *time.Time            `json:"startDate"`
	EndDate      *time.Time            `json:"endDate"`
	Featured     *bool                 `json:"featured"`
	ImageURL     *string               `json:"imageUrl"`
}

type createWorkRequest struct {
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
	EmploymentType   *string    `json:"employmentType"`
}

type updateWorkRequest struct {
	Company          *string    `json:"company"`
	Position         *string    `json:"position"`
	Location         *string    `json:"location"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	Current          *bool      `json:"current"`
	Description      *string    `json:"description"`
	Responsibilities []string   `json:"responsibilities"`
	Achievements     []string   `json:"achievements"`
	Skills           []string   `json:"skills"`
	EmploymentType   *string    `json:"employmentType"`
}

type createLinkRequest struct {
	Platform    string `json:"platform"`
	URL         string `json:"url"`
	Label       string `json:"label"`
	Description string `json:"description"`
	IsPublic    *bool  `json:"isPublic"`
	Order       int    `json:"order"`
}

type updateLinkRequest struct {
	Platform    *string `json:"platform"`
	URL         *string `json:"url"`
	Label       *string `json:"label"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"isPublic"`
	Order       *int    `json:"order"`
}
