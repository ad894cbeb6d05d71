package search

import (
	"github.com/saikrishna-79/portfolio-pro/internal/domain/link"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/profile"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/project"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/skill"
	"github.com/saikrishna-79/portfolio-pro/internal/domain/work"
)

// Results groups keyword matches by entity type. The profile group holds
// at most one record since profiles are singletons per owner.
type Results struct {
	Profile  []*profile.Profile `json:"profile"`
	Skills   []*skill.Skill     `json:"skills"`
	Projects []*project.Project `json:"projects"`
	Work     []*work.Work       `json:"work"`
	Links    []*link.Link       `json:"links"`
}

// Summary counts matches per entity type. The profile contributes at most
// 1 to TotalResults regardless of how many of its fields matched.
type Summary struct {
	TotalResults   int `json:"totalResults"`
	ProfileMatches int `json:"profileMatches"`
	SkillMatches   int `json:"skillMatches"`
	ProjectMatches int `json:"projectMatches"`
	WorkMatches    int `json:"workMatches"`
	LinkMatches    int `json:"linkMatches"`
}

func (r *Results) Summarize() Summary {
	s := Summary{
		ProfileMatches: len(r.Profile),
		SkillMatches:   len(r.Skills),
		ProjectMatches: len(r.Projects),
		WorkMatches:    len(r.Work),
		LinkMatches:    len(r.Links),
	}
	s.TotalResults = s.SkillMatches + s.ProjectMatches + s.WorkMatches + s.LinkMatches
	if s.ProfileMatches > 0 {
		s.TotalResults++
	}
	return s
}
