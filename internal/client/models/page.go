package models

import "encoding/json"

// Page is the backend's pagination envelope.
type Page[T any] struct {
	Items []T `json:"items" validate:"dive"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Pages int `json:"pages"`
}

// Message is the {"message": ...} acknowledgement many endpoints return.
type Message struct {
	Message string `json:"message"`
}

// ErrorEnvelope is the backend's error body convention. Detail is a string
// for most errors and a list of {"msg": ...} objects for request validation
// failures, so it is kept raw.
type ErrorEnvelope struct {
	Detail json.RawMessage `json:"detail"`
}
