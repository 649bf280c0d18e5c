package models

import "time"

type Kind string

const (
	KindTask    Kind = "task"
	KindProject Kind = "project"
)

// Record is a task or a project. The two kinds share one shape; only the
// surface name of the label field differs (tasks call it "label", projects
// call it "project").
type Record struct {
	Id        int64
	Kind      Kind
	Label     string
	Link      string
	OwnerId   int64
	OwnerName string
	CreatedAt time.Time
	Checked   bool
	Private   bool
}

// EventMessage is the activity event published to Kafka after a successful
// mutation by a caller with a known email address.
type EventMessage struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Type     string `json:"type"`
	Kind     string `json:"kind"`
	Label    string `json:"label"`
	Link     string `json:"link,omitempty"`
}
