package models

import (
	"time"

	"github.com/google/uuid"
)

// Client is a freelance client record. ProjectsCount and TotalSpent are
// denormalized aggregates maintained independently of project rows; the
// API returns them as stored and never recomputes them at read time.
type Client struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Company       string    `json:"company"`
	Phone         *string   `json:"phone,omitempty"`
	ProjectsCount int       `json:"projectsCount"`
	TotalSpent    float64   `json:"totalSpent"`
	LastContact   Date      `json:"lastContact"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
