package gameweek

// CurrentFromEventStatus returns the first event-status entry. It reports false
// when the feed is empty or the entry carries no event id.
func CurrentFromEventStatus(statuses []Status) (Status, bool) {
	if len(statuses) == 0 {
		return Status{}, false
	}
	current := statuses[0]
	if current.Gameweek <= 0 {
		return Status{}, false
	}
	return current, true
}

// CurrentFromBootstrap picks the event flagged is_current, falling back to the
// highest finished event id.
func CurrentFromBootstrap(events []Event) (int, bool) {
	for _, event := range events {
		if event.IsCurrent && event.ID > 0 {
			return event.ID, true
		}
	}

	latest := 0
	for _, event := range events {
		if event.Finished && event.ID > latest {
			latest = event.ID
		}
	}
	return latest, latest > 0
}

// FixturesAllFinished is false for a gameweek with no fixtures.
func FixturesAllFinished(fixtures []Fixture, gw int) bool {
	seen := 0
	for _, fixture := range fixtures {
		if fixture.Gameweek != gw {
			continue
		}
		seen++
		if !fixture.Finished {
			return false
		}
		if fixture.FinishedProvisional != nil && !*fixture.FinishedProvisional {
			return false
		}
	}
	return seen > 0
}

func EventFinished(events []Event, gw int) bool {
	for _, event := range events {
		if event.ID == gw {
			return event.Finished
		}
	}
	return false
}

func Evaluate(status Status, fixtures []Fixture, events []Event) Completion {
	out := Completion{
		Gameweek:             status.Gameweek,
		BonusAdded:           status.BonusAdded,
		FixturesAllFinished:  FixturesAllFinished(fixtures, status.Gameweek),
		GameweekFinishedFlag: EventFinished(events, status.Gameweek),
	}
	out.Finished = out.BonusAdded && out.FixturesAllFinished && out.GameweekFinishedFlag
	return out
}
