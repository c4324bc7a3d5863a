package gameweek

// Status is one entry of the FPL event-status feed.
type Status struct {
	Gameweek   int
	BonusAdded bool
}

// Fixture carries the completion flags of a single match.
type Fixture struct {
	Gameweek int
	Finished bool
	// FinishedProvisional is nil when the upstream omitted the field.
	FinishedProvisional *bool
}

// Event is the gameweek metadata published by bootstrap-static.
type Event struct {
	ID        int
	Finished  bool
	IsCurrent bool
}

// Completion is the verdict of the three completion signals for one gameweek.
type Completion struct {
	Gameweek             int
	BonusAdded           bool
	FixturesAllFinished  bool
	GameweekFinishedFlag bool
	Finished             bool
}
