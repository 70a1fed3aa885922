package entities

import "time"

// GenerationRun records one successful script generation.
type GenerationRun struct {
	ID         string      `json:"id"`
	OutputPath string      `json:"output_path"`
	Checksum   string      `json:"checksum"`
	MediaCount int         `json:"media_count"`
	MediaTypes []MediaType `json:"media_types"`
	CreatedAt  time.Time   `json:"created_at"`
}
