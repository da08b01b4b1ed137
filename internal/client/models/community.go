package models

import "github.com/dmitrijs2005/lumina/internal/timex"

type PostCategory string

const (
	CategoryShowcasing PostCategory = "showcasing"
	CategoryHelp       PostCategory = "help"
)

type Post struct {
	ID        string       `json:"id" validate:"required"`
	HashID    string       `json:"hashid,omitempty"`
	Title     string       `json:"title" validate:"required"`
	BodyMD    string       `json:"body_md"`
	Tags      []string     `json:"tags"`
	Category  PostCategory `json:"category"`
	AuthorID  string       `json:"author_id"`
	Comments  []string     `json:"comments"`
	Upvotes   int          `json:"upvotes"`
	Downvotes int          `json:"downvotes"`
	Flags     int          `json:"flags"`
	IsRemoved bool         `json:"is_removed"`
	CreatedAt timex.Time   `json:"created_at"`
	UpdatedAt timex.Time   `json:"updated_at"`
}

type PostInput struct {
	Title    string       `json:"title" validate:"required,max=200"`
	BodyMD   string       `json:"body_md" validate:"required,max=5000"`
	Tags     []string     `json:"tags"`
	Category PostCategory `json:"category" validate:"required,oneof=showcasing help"`
}

type PostUpdate struct {
	Title  *string  `json:"title,omitempty"`
	BodyMD *string  `json:"body_md,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

type Comment struct {
	ID        string     `json:"id" validate:"required"`
	HashID    string     `json:"hashid,omitempty"`
	BodyMD    string     `json:"body_md"`
	Tag       string     `json:"tag,omitempty"`
	AuthorID  string     `json:"author_id"`
	PostID    string     `json:"post_id"`
	CreatedAt timex.Time `json:"created_at"`
	UpdatedAt timex.Time `json:"updated_at"`
}

type CommentInput struct {
	BodyMD string `json:"body_md" validate:"required,max=2000"`
	Tag    string `json:"tag,omitempty" validate:"max=50"`
}

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

type Submission struct {
	ID          string           `json:"id" validate:"required"`
	HashID      string           `json:"hashid,omitempty"`
	ProjectID   string           `json:"project_id"`
	RepoURL     string           `json:"repo_url"`
	ReadmeMD    string           `json:"readme_md"`
	UserID      string           `json:"user_id"`
	Status      SubmissionStatus `json:"status"`
	ReviewedBy  string           `json:"reviewed_by,omitempty"`
	ReviewNotes string           `json:"review_notes,omitempty"`
	SubmittedAt timex.Time       `json:"submitted_at"`
	ReviewedAt  timex.Time       `json:"reviewed_at"`
}

type SubmissionInput struct {
	ProjectID string `json:"project_id" validate:"required"`
	RepoURL   string `json:"repo_url" validate:"required,url,max=500"`
	ReadmeMD  string `json:"readme_md" validate:"required,max=10000"`
}

type ProjectIdea struct {
	ID                 string        `json:"id" validate:"required"`
	HashID             string        `json:"hashid,omitempty"`
	Title              string        `json:"title" validate:"required"`
	Description        string        `json:"description"`
	SolarSystemID      string        `json:"solar_system_id"`
	Tags               []string      `json:"tags"`
	Difficulty         string        `json:"difficulty"`
	EstimatedTime      string        `json:"estimated_time"`
	Resources          []Resource    `json:"resources"`
	Requirements       []string      `json:"requirements"`
	LearningObjectives []string      `json:"learning_objectives"`
	SubmittedBy        string        `json:"submitted_by"`
	Upvotes            int           `json:"upvotes"`
	Status             ProjectStatus `json:"status"`
	IsTaken            bool          `json:"is_taken"`
	ExpiresAt          timex.Time    `json:"expires_at"`
	CreatedAt          timex.Time    `json:"created_at"`
	UpdatedAt          timex.Time    `json:"updated_at"`
}

type ProjectIdeaInput struct {
	Title              string     `json:"title" validate:"required,max=200"`
	Description        string     `json:"description" validate:"required,max=1000"`
	SolarSystemID      string     `json:"solar_system_id" validate:"required"`
	Tags               []string   `json:"tags"`
	Difficulty         string     `json:"difficulty" validate:"required,oneof=Beginner Intermediate Advanced"`
	EstimatedTime      string     `json:"estimated_time" validate:"required,max=50"`
	Resources          []Resource `json:"resources"`
	Requirements       []string   `json:"requirements"`
	LearningObjectives []string   `json:"learning_objectives"`
}

type VoteType string

const (
	VoteUp   VoteType = "upvote"
	VoteDown VoteType = "downvote"
	VoteFlag VoteType = "flag"
)

// VoteRequest targets exactly one of a post or a project idea.
type VoteRequest struct {
	PostID        string   `json:"post_id,omitempty" validate:"required_without=ProjectIdeaID"`
	ProjectIdeaID string   `json:"project_idea_id,omitempty" validate:"required_without=PostID"`
	VoteType      VoteType `json:"vote_type" validate:"required,oneof=upvote downvote flag"`
}

type VoteResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
	Flags     int    `json:"flags"`
}
