package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("gw", "taken_at").
		From("league_snapshots").
		Where(Eq("league_id", int64(314)), Eq("gw", 12)).
		OrderBy("gw ASC").
		Limit(1).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT gw, taken_at FROM league_snapshots WHERE league_id = ? AND gw = ? ORDER BY gw ASC LIMIT 1"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(314) || args[1] != 12 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error without table")
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		LeagueID int64  `db:"league_id"`
		Gameweek int    `db:"gw"`
		Ignored  string `db:"-"`
		internal string
		Data     string `db:"data,omitempty"`
	}

	query, args, err := InsertModel("league_snapshots", row{LeagueID: 1, Gameweek: 2, Data: "{}", internal: "x"}, "ON CONFLICT (league_id, gw) DO NOTHING")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO league_snapshots (league_id, gw, data) VALUES (?, ?, ?) ON CONFLICT (league_id, gw) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != int64(1) || args[1] != 2 || args[2] != "{}" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel_RejectsNonStruct(t *testing.T) {
	if _, _, err := InsertModel("t", 42, ""); err == nil {
		t.Fatalf("expected error for non-struct model")
	}
	var nilRow *struct{}
	if _, _, err := InsertModel("t", nilRow, ""); err == nil {
		t.Fatalf("expected error for nil model")
	}
}
