package nflverse

// WeeklyStat is one player's stat line for a single week of a season, as
// published in the nflverse player_stats release files.
type WeeklyStat struct {
	PlayerID   string
	PlayerName string
	Position   string
	Season     int
	Week       int
	Team       string

	PassingYards    int
	PassingTDs      int
	Interceptions   int
	PassingAttempts int
	Completions     int
	RushingYards    int
	RushingTDs      int
	RushingAttempts int
	ReceivingYards  int
	ReceivingTDs    int
	Receptions      int
	Targets         int
}

// requiredColumns are the CSV columns the loader reads. The release files
// carry many more; everything else is ignored.
var requiredColumns = []string{
	"player_id",
	"player_display_name",
	"position",
	"season",
	"week",
	"recent_team",
	"passing_yards",
	"passing_tds",
	"interceptions",
	"passing_attempts",
	"completions",
	"rushing_yards",
	"rushing_tds",
	"rushing_attempts",
	"receiving_yards",
	"receiving_tds",
	"receptions",
	"targets",
}
