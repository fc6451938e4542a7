// Package nflverse downloads and decodes nflverse player stat releases.
//
// The nflverse project publishes one CSV per season of weekly player stat
// lines. This package fetches the file for a season and decodes it into
// typed rows; it performs no aggregation.
package nflverse

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the root of the nflverse release downloads.
const DefaultBaseURL = "https://github.com/nflverse/nflverse-data/releases/download"

// Client fetches nflverse release files over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client rooted at baseURL. The timeout bounds the
// whole download including the response body read.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchPlayerStats downloads and decodes the weekly player stats CSV for a
// season. A non-200 response, transport failure, or undecodable file all
// return an error; the caller decides whether to skip the season. No retry
// is attempted.
func (c *Client) FetchPlayerStats(ctx context.Context, season int) ([]WeeklyStat, error) {
	url := fmt.Sprintf("%s/player_stats/player_stats_%d.csv", c.baseURL, season)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("season %d not published (404): %s", season, url)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}

	rows, err := DecodePlayerStats(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode player stats for %d: %w", season, err)
	}
	return rows, nil
}

// DecodePlayerStats reads a weekly player stats CSV into typed rows.
//
// The header row is mapped by name, so column order does not matter and
// extra columns are ignored. Missing required columns fail the whole
// decode. A blank cell in a numeric column counts as zero; a cell that is
// present but not numeric fails that row, which is dropped with a warning
// rather than corrupting a season total.
func DecodePlayerStats(r io.Reader) ([]WeeklyStat, error) {
	cr := csv.NewReader(skipBOM(r))
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var rows []WeeklyStat
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}

		row, err := decodeRow(record, idx)
		if err != nil {
			slog.Warn("dropping malformed stat row", "line", line, "error", err)
			continue
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func decodeRow(record []string, idx map[string]int) (WeeklyStat, error) {
	p := rowParser{record: record, idx: idx}

	row := WeeklyStat{
		PlayerID:        p.text("player_id"),
		PlayerName:      p.text("player_display_name"),
		Position:        p.text("position"),
		Season:          p.number("season"),
		Week:            p.number("week"),
		Team:            p.text("recent_team"),
		PassingYards:    p.number("passing_yards"),
		PassingTDs:      p.number("passing_tds"),
		Interceptions:   p.number("interceptions"),
		PassingAttempts: p.number("passing_attempts"),
		Completions:     p.number("completions"),
		RushingYards:    p.number("rushing_yards"),
		RushingTDs:      p.number("rushing_tds"),
		RushingAttempts: p.number("rushing_attempts"),
		ReceivingYards:  p.number("receiving_yards"),
		ReceivingTDs:    p.number("receiving_tds"),
		Receptions:      p.number("receptions"),
		Targets:         p.number("targets"),
	}
	if p.err != nil {
		return WeeklyStat{}, p.err
	}
	return row, nil
}

// rowParser accumulates the first field error while reading a record, so a
// row is accepted or rejected as a whole.
type rowParser struct {
	record []string
	idx    map[string]int
	err    error
}

func (p *rowParser) text(column string) string {
	return strings.TrimSpace(p.record[p.idx[column]])
}

// number parses an integer stat cell. Blank cells count as zero: nflverse
// leaves categories empty for positions that never record them (a kicker has
// no targets), and those weeks must still sum cleanly.
func (p *rowParser) number(column string) int {
	if p.err != nil {
		return 0
	}
	s := strings.TrimSpace(p.record[p.idx[column]])
	if s == "" || s == "NA" {
		return 0
	}
	// Some numeric columns arrive float-formatted ("150.0")
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	p.err = fmt.Errorf("column %s: invalid number %q", column, s)
	return 0
}
