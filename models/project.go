package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio project as exposed by the API.
// Column names are snake_case in the store; the JSON tags define the
// public camelCase contract, so all renaming happens in this one place.
// Client is a free-text label, not a foreign key into clients.
type Project struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Status       string       `json:"status"`
	Client       string       `json:"client"`
	StartDate    Date         `json:"startDate"`
	EndDate      *Date        `json:"endDate,omitempty"`
	Budget       float64      `json:"budget"`
	Progress     int          `json:"progress"`
	Technologies Technologies `json:"technologies"`
	ImageURL     *string      `json:"imageUrl,omitempty"`
	LiveURL      *string      `json:"liveUrl,omitempty"`
	GithubURL    *string      `json:"githubUrl,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Technologies is the ordered tag list stored as a JSON text column.
// Decoding is deliberately lenient: a NULL, empty, or malformed stored
// value scans to an empty list, never an error.
type Technologies []string

func (t *Technologies) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = Technologies{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		*t = Technologies{}
		return nil
	}

	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil || tags == nil {
		*t = Technologies{}
		return nil
	}
	*t = tags
	return nil
}

func (t Technologies) Value() (driver.Value, error) {
	if t == nil {
		t = Technologies{}
	}
	raw, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// CreateProjectRequest is the payload for creating a project.
// Budget and Progress are pointers so that a legitimate zero survives
// the required check; absence of any required field is a 400.
type CreateProjectRequest struct {
	Title        string       `json:"title" binding:"required"`
	Description  string       `json:"description" binding:"required"`
	Category     string       `json:"category" binding:"required"`
	Status       string       `json:"status" binding:"required,oneof=active completed archived"`
	Client       string       `json:"client" binding:"required"`
	StartDate    Date         `json:"startDate" binding:"required"`
	EndDate      *Date        `json:"endDate"`
	Budget       *float64     `json:"budget" binding:"required,gte=0"`
	Progress     *int         `json:"progress" binding:"required,gte=0,lte=100"`
	Technologies Technologies `json:"technologies"`
	ImageURL     *string      `json:"imageUrl"`
	LiveURL      *string      `json:"liveUrl"`
	GithubURL    *string      `json:"githubUrl"`
}

// UpdateProjectRequest is the payload for a partial update.
// Nil fields are left untouched in the store.
type UpdateProjectRequest struct {
	Title        *string       `json:"title"`
	Description  *string       `json:"description"`
	Category     *string       `json:"category"`
	Status       *string       `json:"status" binding:"omitempty,oneof=active completed archived"`
	Client       *string       `json:"client"`
	StartDate    *Date         `json:"startDate"`
	EndDate      *Date         `json:"endDate"`
	Budget       *float64      `json:"budget" binding:"omitempty,gte=0"`
	Progress     *int          `json:"progress" binding:"omitempty,gte=0,lte=100"`
	Technologies *Technologies `json:"technologies"`
	ImageURL     *string       `json:"imageUrl"`
	LiveURL      *string       `json:"liveUrl"`
	GithubURL    *string       `json:"githubUrl"`
}
