package fpl

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/riskibarqy/fpl-league-api/internal/domain/gameweek"
	"github.com/riskibarqy/fpl-league-api/internal/domain/standings"
)

type eventStatusEnvelope struct {
	Status []struct {
		BonusAdded bool   `json:"bonus_added"`
		Date       string `json:"date"`
		Event      int    `json:"event"`
		Points     string `json:"points"`
	} `json:"status"`
	Leagues string `json:"leagues"`
}

type fixtureItem struct {
	ID                  int64 `json:"id"`
	Event               *int  `json:"event"`
	Finished            bool  `json:"finished"`
	FinishedProvisional *bool `json:"finished_provisional"`
}

type bootstrapEnvelope struct {
	Events []struct {
		ID        int  `json:"id"`
		Finished  bool `json:"finished"`
		IsCurrent bool `json:"is_current"`
	} `json:"events"`
}

func (c *Client) FetchEventStatus(ctx context.Context) ([]gameweek.Status, error) {
	var payload eventStatusEnvelope
	if err := c.FetchJSON(ctx, "/event-status/", &payload); err != nil {
		return nil, fmt.Errorf("fetch event status: %w", err)
	}

	out := make([]gameweek.Status, 0, len(payload.Status))
	for _, item := range payload.Status {
		out = append(out, gameweek.Status{
			Gameweek:   item.Event,
			BonusAdded: item.BonusAdded,
		})
	}
	return out, nil
}

func (c *Client) FetchFixtures(ctx context.Context) ([]gameweek.Fixture, error) {
	var payload []fixtureItem
	if err := c.FetchJSON(ctx, "/fixtures/", &payload); err != nil {
		return nil, fmt.Errorf("fetch fixtures: %w", err)
	}

	out := make([]gameweek.Fixture, 0, len(payload))
	for _, item := range payload {
		gw := 0
		if item.Event != nil {
			gw = *item.Event
		}
		out = append(out, gameweek.Fixture{
			Gameweek:            gw,
			Finished:            item.Finished,
			FinishedProvisional: item.FinishedProvisional,
		})
	}
	return out, nil
}

func (c *Client) FetchBootstrap(ctx context.Context) ([]gameweek.Event, error) {
	var payload bootstrapEnvelope
	if err := c.FetchJSON(ctx, "/bootstrap-static/", &payload); err != nil {
		return nil, fmt.Errorf("fetch bootstrap: %w", err)
	}

	out := make([]gameweek.Event, 0, len(payload.Events))
	for _, item := range payload.Events {
		out = append(out, gameweek.Event{
			ID:        item.ID,
			Finished:  item.Finished,
			IsCurrent: item.IsCurrent,
		})
	}
	return out, nil
}

func (c *Client) FetchStandingsPage(ctx context.Context, leagueID int64, page int) (standings.Page, error) {
	if page < 1 {
		page = 1
	}

	path := fmt.Sprintf("/leagues-classic/%d/standings/?page_standings=%d", leagueID, page)
	var payload standings.Page
	if err := c.FetchJSON(ctx, path, &payload); err != nil {
		return standings.Page{}, fmt.Errorf("fetch standings league_id=%d page=%d: %w", leagueID, page, err)
	}
	return payload, nil
}

func (c *Client) FetchEntryPicks(ctx context.Context, entryID int64, gw int) (json.RawMessage, error) {
	path := fmt.Sprintf("/entry/%d/event/%d/picks/", entryID, gw)
	var payload json.RawMessage
	if err := c.FetchJSON(ctx, path, &payload); err != nil {
		return nil, fmt.Errorf("fetch picks entry_id=%d gw=%d: %w", entryID, gw, err)
	}
	return payload, nil
}
