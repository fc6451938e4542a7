// Package identity resolves human-readable player names and team codes to
// the stable identifiers persisted in the database.
package identity

// Resolver holds read-only mapping snapshots for one run. Records created
// after the snapshots are taken are invisible until the next run.
type Resolver struct {
	teams   map[string]string // team code -> team id
	players map[string]string // lower-cased full name -> player id
}

// NewResolver builds a resolver over the given snapshots. The maps are
// retained as-is; callers must not mutate them afterwards.
func NewResolver(teams, players map[string]string) *Resolver {
	return &Resolver{teams: teams, players: players}
}

// Team resolves a team code (short uppercase string) to its identifier.
func (r *Resolver) Team(code string) (string, bool) {
	id, ok := r.teams[code]
	return id, ok
}

// Player resolves a display name to a player identifier, trying each
// normalization strategy in order. Returns false when no strategy hits.
func (r *Resolver) Player(name string) (string, bool) {
	for _, normalize := range nameStrategies {
		if id, ok := r.players[normalize(name)]; ok {
			return id, true
		}
	}
	return "", false
}

// TeamCount reports the size of the team snapshot, for startup logging.
func (r *Resolver) TeamCount() int { return len(r.teams) }

// PlayerCount reports the size of the player snapshot, for startup logging.
func (r *Resolver) PlayerCount() int { return len(r.players) }
