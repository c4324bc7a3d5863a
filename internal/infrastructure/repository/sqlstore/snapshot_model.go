package sqlstore

const snapshotTable = "league_snapshots"

type snapshotTableModel struct {
	ID       int64  `db:"id"`
	LeagueID int64  `db:"league_id"`
	Gameweek int    `db:"gw"`
	TakenAt  string `db:"taken_at"`
	Data     string `db:"data"`
}

type snapshotSummaryModel struct {
	Gameweek int    `db:"gw"`
	TakenAt  string `db:"taken_at"`
}

type snapshotInsertModel struct {
	LeagueID int64  `db:"league_id"`
	Gameweek int    `db:"gw"`
	TakenAt  string `db:"taken_at"`
	Data     string `db:"data"`
}
