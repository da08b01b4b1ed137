package models

type AdminStats struct {
	TotalUsers          int `json:"total_users"`
	TotalPosts          int `json:"total_posts"`
	TotalProjectIdeas   int `json:"total_project_ideas"`
	TotalSubmissions    int `json:"total_submissions"`
	PendingSubmissions  int `json:"pending_submissions"`
	PendingProjectIdeas int `json:"pending_project_ideas"`
}

type SubmissionReview struct {
	Status      SubmissionStatus `json:"status" validate:"required,oneof=approved rejected pending"`
	ReviewNotes string           `json:"review_notes,omitempty"`
}

type ProjectIdeaModeration struct {
	Status  *ProjectStatus `json:"status,omitempty" validate:"omitempty,oneof=draft pending_approval approved rejected"`
	IsTaken *bool          `json:"is_taken,omitempty"`
}
