package models

import "github.com/dmitrijs2005/lumina/internal/timex"

type Galaxy struct {
	ID                  string     `json:"id" validate:"required"`
	HashID              string     `json:"hashid,omitempty"`
	Name                string     `json:"name" validate:"required"`
	Description         string     `json:"description"`
	Icon                string     `json:"icon,omitempty"`
	Color               string     `json:"color,omitempty"`
	IsUnlockedByDefault bool       `json:"is_unlocked_by_default"`
	CreatedAt           timex.Time `json:"created_at"`
	UpdatedAt           timex.Time `json:"updated_at"`
}

type GalaxyInput struct {
	Name                string `json:"name" validate:"required,max=100"`
	Description         string `json:"description" validate:"required,max=500"`
	Icon                string `json:"icon,omitempty"`
	Color               string `json:"color,omitempty"`
	IsUnlockedByDefault bool   `json:"is_unlocked_by_default"`
}

type SolarSystem struct {
	ID          string     `json:"id" validate:"required"`
	HashID      string     `json:"hashid,omitempty"`
	GalaxyID    string     `json:"galaxy_id"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags"`
	BadgeID     string     `json:"badge_id,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Color       string     `json:"color,omitempty"`
	CreatedAt   timex.Time `json:"created_at"`
	UpdatedAt   timex.Time `json:"updated_at"`
}

type SolarSystemInput struct {
	GalaxyID    string   `json:"galaxy_id" validate:"required"`
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=500"`
	Tags        []string `json:"tags"`
	BadgeID     string   `json:"badge_id,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Color       string   `json:"color,omitempty"`
}

// Resource is an external learning link attached to a project.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ProjectStatus string

const (
	ProjectDraft           ProjectStatus = "draft"
	ProjectPendingApproval ProjectStatus = "pending_approval"
	ProjectApproved        ProjectStatus = "approved"
	ProjectRejected        ProjectStatus = "rejected"
)

type Project struct {
	ID                 string        `json:"id" validate:"required"`
	HashID             string        `json:"hashid,omitempty"`
	SolarSystemID      string        `json:"solar_system_id"`
	Title              string        `json:"title" validate:"required"`
	Description        string        `json:"description"`
	Tags               []string      `json:"tags"`
	Difficulty         string        `json:"difficulty,omitempty"`
	EstimatedTime      string        `json:"estimated_time,omitempty"`
	Resources          []Resource    `json:"resources"`
	Requirements       []string      `json:"requirements"`
	LearningObjectives []string      `json:"learning_objectives"`
	Status             ProjectStatus `json:"status,omitempty"`
	CreatedBy          string        `json:"created_by,omitempty"`
	CreatedAt          timex.Time    `json:"created_at"`
	UpdatedAt          timex.Time    `json:"updated_at"`
}

type ProjectInput struct {
	SolarSystemID      string     `json:"solar_system_id" validate:"required"`
	Title              string     `json:"title" validate:"required,max=200"`
	Description        string     `json:"description" validate:"required,max=1000"`
	Tags               []string   `json:"tags"`
	Difficulty         string     `json:"difficulty,omitempty"`
	EstimatedTime      string     `json:"estimated_time,omitempty"`
	Resources          []Resource `json:"resources"`
	Requirements       []string   `json:"requirements"`
	LearningObjectives []string   `json:"learning_objectives"`
}

type Badge struct {
	ID            string     `json:"id" validate:"required"`
	HashID        string     `json:"hashid,omitempty"`
	Name          string     `json:"name" validate:"required"`
	Description   string     `json:"description"`
	Icon          string     `json:"icon"`
	Color         string     `json:"color"`
	SolarSystemID string     `json:"solar_system_id"`
	CreatedAt     timex.Time `json:"created_at"`
	UpdatedAt     timex.Time `json:"updated_at"`
}
