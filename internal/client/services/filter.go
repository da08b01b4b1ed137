package services

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/lumina/internal/client/models"
)

const (
	recentWindow   = 7 * 24 * time.Hour
	expiringWindow = 3 * 24 * time.Hour
)

type IdeaFilter string

const (
	IdeasAll      IdeaFilter = "all"
	IdeasRecent   IdeaFilter = "recent"
	IdeasExpiring IdeaFilter = "expiring"
)

func ParseIdeaFilter(s string) (IdeaFilter, error) {
	switch f := IdeaFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return IdeasAll, nil
	case IdeasAll, IdeasRecent, IdeasExpiring:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown idea filter %q", ErrInvalidInput, s)
	}
}

func contains(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}

func anyContains(ss []string, q string) bool {
	return slices.ContainsFunc(ss, func(s string) bool { return contains(s, q) })
}

func normalize(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// SearchGalaxies keeps galaxies whose name or description contains q,
// ignoring case. An empty q keeps everything.
func SearchGalaxies(galaxies []models.Galaxy, q string) []models.Galaxy {
	q = normalize(q)
	if q == "" {
		return galaxies
	}
	var out []models.Galaxy
	for _, g := range galaxies {
		if contains(g.Name, q) || contains(g.Description, q) {
			out = append(out, g)
		}
	}
	return out
}

// SearchProjects matches title, description or any tag.
func SearchProjects(projects []models.Project, q string) []models.Project {
	q = normalize(q)
	if q == "" {
		return projects
	}
	var out []models.Project
	for _, p := range projects {
		if contains(p.Title, q) || contains(p.Description, q) || anyContains(p.Tags, q) {
			out = append(out, p)
		}
	}
	return out
}

// ProjectsWithTag keeps projects carrying tag exactly, ignoring case.
func ProjectsWithTag(projects []models.Project, tag string) []models.Project {
	tag = normalize(tag)
	if tag == "" {
		return projects
	}
	var out []models.Project
	for _, p := range projects {
		if slices.ContainsFunc(p.Tags, func(t string) bool { return strings.ToLower(t) == tag }) {
			out = append(out, p)
		}
	}
	return out
}

func SearchIdeas(ideas []models.ProjectIdea, q string) []models.ProjectIdea {
	q = normalize(q)
	if q == "" {
		return ideas
	}
	var out []models.ProjectIdea
	for _, i := range ideas {
		if contains(i.Title, q) || contains(i.Description, q) || anyContains(i.Tags, q) {
			out = append(out, i)
		}
	}
	return out
}

func ideaExpired(i models.ProjectIdea, now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

// FilterIdeas applies one of the idea filters and sorts the result. Expired
// ideas are always dropped.
//
//	all       newest first
//	recent    created within the last 7 days, newest first
//	expiring  expiring within the next 3 days, soonest first
func FilterIdeas(ideas []models.ProjectIdea, f IdeaFilter, now time.Time) []models.ProjectIdea {
	out := make([]models.ProjectIdea, 0, len(ideas))
	for _, i := range ideas {
		if ideaExpired(i, now) {
			continue
		}
		switch f {
		case IdeasRecent:
			if !i.CreatedAt.After(now.Add(-recentWindow)) {
				continue
			}
		case IdeasExpiring:
			if i.ExpiresAt.IsZero() || !i.ExpiresAt.Before(now.Add(expiringWindow)) {
				continue
			}
		}
		out = append(out, i)
	}

	if f == IdeasExpiring {
		slices.SortStableFunc(out, func(a, b models.ProjectIdea) int {
			return a.ExpiresAt.Compare(b.ExpiresAt.Time)
		})
	} else {
		slices.SortStableFunc(out, func(a, b models.ProjectIdea) int {
			return b.CreatedAt.Compare(a.CreatedAt.Time)
		})
	}
	return out
}
