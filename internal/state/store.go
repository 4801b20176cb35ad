// Package state provides the generation ledger using SQLite.
// It records generation runs and every name they mint.
package state

import "time"

// RunStatus represents the lifecycle state of a generation run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusCompleted RunStatus = "completed"
	RunStatusFailed    RunStatus = "failed"
)

// Run is one invocation of the generator against a language.
type Run struct {
	ID          string
	Language    string
	Seed        uint64
	Status      RunStatus
	StartedAt   time.Time
	CompletedAt *time.Time
	Error       string
}

// NameRecord is one minted name attributed to a run and pool.
type NameRecord struct {
	ID        string
	RunID     string
	Pool      string
	Name      string
	CreatedAt time.Time
}

// Store is the ledger interface.
type Store interface {
	Open(path string) error
	Close() error
	InitSchema() error

	BeginRun(language string, seed uint64) (*Run, error)
	CompleteRun(id string, status RunStatus, errMsg string) error
	GetRun(id string) (*Run, error)
	ListRuns(limit int) ([]*Run, error)

	RecordName(runID, pool, name string) (*NameRecord, error)
	ListNames(runID string) ([]*NameRecord, error)
	ListNamesByPool(pool string, limit int) ([]*NameRecord, error)
}
