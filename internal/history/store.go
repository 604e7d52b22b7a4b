// Package history persists the results of past command runs so they can be
// retrieved later by run ID.
package history

import "time"

// Record is the persisted form of one command run.
type Record struct {
	ID      string    `json:"id"`
	Command string    `json:"command"`
	Stdout  string    `json:"stdout"`
	Stderr  string    `json:"stderr"`
	Exited  int       `json:"exited"`
	Pty     bool      `json:"pty"`
	Ran     time.Time `json:"ran"`
}

// Store persists and retrieves run records.
type Store interface {
	Save(rec *Record) error
	Load(id string) (*Record, error)
}
