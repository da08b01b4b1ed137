// Package models defines the records exchanged with the Lumina backend.
//
// Response records carry `validate` tags; the client validates decoded
// payloads against them so an incomplete backend response fails at the
// boundary instead of surfacing as zero values deeper in the program.
package models
