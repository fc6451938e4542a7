package loader

import (
	"context"
	"errors"
	"testing"

	"github.com/gridstats/nflverse-loader/internal/nflverse"
)

// fakeFetcher serves canned weekly rows per season, or an error.
type fakeFetcher struct {
	seasons map[int][]nflverse.WeeklyStat
	errs    map[int]error
	calls   []int
}

func (f *fakeFetcher) FetchPlayerStats(ctx context.Context, season int) ([]nflverse.WeeklyStat, error) {
	f.calls = append(f.calls, season)
	if err := f.errs[season]; err != nil {
		return nil, err
	}
	return f.seasons[season], nil
}

func weeklyRow(name string, season, week int, team string, passYds int) nflverse.WeeklyStat {
	return nflverse.WeeklyStat{
		PlayerID:     "src-" + name,
		PlayerName:   name,
		Position:     "QB",
		Season:       season,
		Week:         week,
		Team:         team,
		PassingYards: passYds,
	}
}

func TestRun_EndToEnd(t *testing.T) {
	storage := newFakeStorage()
	fetcher := &fakeFetcher{
		seasons: map[int][]nflverse.WeeklyStat{
			2023: {
				weeklyRow("P", 2023, 1, "A", 100),
				weeklyRow("P", 2023, 2, "A", 150),
				weeklyRow("P", 2023, 3, "A", 200),
				weeklyRow("P", 2023, 4, "B", 50),
			},
		},
	}

	d := NewDriver(fetcher, storage, []int{2023}, nil)
	summary, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// P changed teams mid-season, so only the later (player, season) upsert
	// survives in the keyed table: insert for team A, overwrite for team B.
	if summary.Inserted != 1 || summary.Updated != 1 {
		t.Errorf("summary = %+v, want 1 insert and 1 update for the team change", summary)
	}
	if summary.SeasonsLoaded != 1 {
		t.Errorf("SeasonsLoaded = %d, want 1", summary.SeasonsLoaded)
	}

	rec, ok := storage.db["player-p|2023"]
	if !ok {
		t.Fatal("no record written for player P")
	}
	if rec.TeamID == nil || *rec.TeamID != "team-b" {
		t.Errorf("TeamID = %v, want the last written team (team-b)", rec.TeamID)
	}
	if rec.GamesPlayed != 1 || rec.PassingYards != 50 {
		t.Errorf("record = %+v, want the team B aggregate (games=1, yards=50)", rec)
	}
}

func TestRun_FetchFailureSkipsOnlyThatSeason(t *testing.T) {
	storage := newFakeStorage()
	fetcher := &fakeFetcher{
		seasons: map[int][]nflverse.WeeklyStat{
			2023: {weeklyRow("P", 2023, 1, "A", 100)},
		},
		errs: map[int]error{2024: errors.New("connection refused")},
	}

	d := NewDriver(fetcher, storage, []int{2024, 2023}, nil)
	summary, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if summary.SeasonsSkipped != 1 {
		t.Errorf("SeasonsSkipped = %d, want 1", summary.SeasonsSkipped)
	}
	if summary.SeasonsLoaded != 1 {
		t.Errorf("SeasonsLoaded = %d, want 2023 still processed", summary.SeasonsLoaded)
	}
	if len(fetcher.calls) != 2 {
		t.Errorf("fetch calls = %v, want both seasons attempted", fetcher.calls)
	}
	if _, ok := storage.db["player-p|2023"]; !ok {
		t.Error("2023 record missing; the 2024 failure must not block it")
	}
}

func TestRun_InvalidWeeklyRowsDroppedBeforeLoad(t *testing.T) {
	storage := newFakeStorage()
	fetcher := &fakeFetcher{
		seasons: map[int][]nflverse.WeeklyStat{
			2023: {
				weeklyRow("P", 2023, 1, "A", 100),
				// season cell mangled at the source; aggregates to an
				// out-of-range row that validation drops
				weeklyRow("Q", 23, 1, "B", 50),
			},
		},
	}

	d := NewDriver(fetcher, storage, []int{2023}, nil)
	summary, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if summary.Inserted != 1 {
		t.Errorf("Inserted = %d, want only the valid row", summary.Inserted)
	}
	if summary.Failed != 0 {
		t.Errorf("Failed = %d, validation drops are not load failures", summary.Failed)
	}
}

func TestRun_MappingQueryFailureIsFatal(t *testing.T) {
	storage := newFakeStorage()
	fetcher := &fakeFetcher{}

	failing := &failingStorage{fakeStorage: storage}
	d := NewDriver(fetcher, failing, []int{2023}, nil)
	if _, err := d.Run(context.Background()); err == nil {
		t.Fatal("Run() succeeded without identity mappings, want error")
	}
	if len(fetcher.calls) != 0 {
		t.Errorf("fetch calls = %v, want none before mappings load", fetcher.calls)
	}
}

type failingStorage struct {
	*fakeStorage
}

func (s *failingStorage) Teams(ctx context.Context) (map[string]string, error) {
	return nil, errors.New("relation teams does not exist")
}
