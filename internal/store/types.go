package store

// CareerStat is one persisted player_career_stats record, keyed by
// (PlayerID, Season). TeamID is nil when the team code did not resolve;
// the row is still written with a NULL team reference.
type CareerStat struct {
	PlayerID string
	Season   int
	TeamID   *string

	GamesPlayed int

	PassingYards       int
	PassingTDs         int
	PassingInts        int
	PassingAttempts    int
	PassingCompletions int

	RushingYards    int
	RushingTDs      int
	RushingAttempts int

	ReceivingYards   int
	ReceivingTDs     int
	Receptions       int
	ReceivingTargets int
}
