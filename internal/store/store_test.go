package store

import (
	"strings"
	"testing"
)

func TestUpsertArgs_MatchesPlaceholders(t *testing.T) {
	placeholders := strings.Count(upsertCareerStat, "$")
	args := upsertArgs(CareerStat{PlayerID: "p", Season: 2023})

	if len(args) != placeholders {
		t.Errorf("upsertArgs returned %d values for %d placeholders", len(args), placeholders)
	}
}

func TestUpsertArgs_NilTeam(t *testing.T) {
	args := upsertArgs(CareerStat{PlayerID: "p", Season: 2023, TeamID: nil})

	// team_id is the third placeholder; an unresolved team must bind NULL.
	if args[2] != (*string)(nil) {
		t.Errorf("args[2] = %v, want nil team id", args[2])
	}
}

func TestUpsertSQL_UpdatesEveryNonKeyColumn(t *testing.T) {
	// The insert column list and the DO UPDATE SET list must stay in sync:
	// every column except the conflict key is overwritten on update.
	nonKey := []string{
		"team_id", "games_played",
		"passing_yards", "passing_tds", "passing_ints",
		"passing_attempts", "passing_completions",
		"rushing_yards", "rushing_tds", "rushing_attempts",
		"receiving_yards", "receiving_tds", "receptions", "receiving_targets",
	}

	_, update, found := strings.Cut(upsertCareerStat, "DO UPDATE SET")
	if !found {
		t.Fatal("upsert statement has no DO UPDATE SET clause")
	}
	for _, col := range nonKey {
		if !strings.Contains(update, col+" = EXCLUDED."+col) {
			t.Errorf("column %s is not overwritten on conflict", col)
		}
	}
	for _, key := range []string{"player_id = EXCLUDED", "season = EXCLUDED"} {
		if strings.Contains(update, key) {
			t.Errorf("key column must not be updated: %s", key)
		}
	}
}
