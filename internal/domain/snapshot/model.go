package snapshot

import (
	"fmt"
	"time"
)

// Snapshot is the frozen final standings of one league for one gameweek.
type Snapshot struct {
	LeagueID int64
	Gameweek int
	TakenAt  time.Time
	Data     []byte
}

type Summary struct {
	Gameweek int
	TakenAt  time.Time
}

func (s Snapshot) Validate() error {
	if s.LeagueID <= 0 {
		return fmt.Errorf("snapshot league id must be positive")
	}
	if s.Gameweek <= 0 {
		return fmt.Errorf("snapshot gameweek must be positive")
	}
	if s.TakenAt.IsZero() {
		return fmt.Errorf("snapshot taken_at is required")
	}
	if len(s.Data) == 0 {
		return fmt.Errorf("snapshot data is required")
	}
	return nil
}
