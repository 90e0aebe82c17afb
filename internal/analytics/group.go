package analytics

import (
	"fmt"
	"time"

	"github.com/vmunix/curator/pkg/release"
)

// GroupMetrics is the per-run activity recorded for one release group.
// Zero values are the defaults: a group mentioned with an empty metrics
// struct is counted as seen with no activity.
type GroupMetrics struct {
	Releases  int
	Bytes     int64
	Successes int
	Failures  int
}

// Group is the stored aggregate for a release group across all runs.
type Group struct {
	ID         int64
	Name       string
	Releases   int
	TotalBytes int64
	Successes  int
	Failures   int
	FirstSeen  time.Time
	LastSeen   time.Time
}

// upsertGroup folds name onto an existing near-identical group (case and
// minor spelling variants) and accumulates the metrics, inserting a new row
// for genuinely new groups. Returns the row id.
func upsertGroup(q querier, name string, m GroupMetrics) (int64, error) {
	names, err := groupNames(q)
	if err != nil {
		return 0, err
	}

	canonical := name
	if match := release.MatchGroup(name, names); match.Confidence == release.ConfidenceHigh {
		canonical = match.Name
	}

	now := time.Now()
	var id int64
	err = q.QueryRow(`SELECT id FROM release_groups WHERE name = ?`, canonical).Scan(&id)
	switch mapSQLiteError(err) {
	case nil:
		_, err = q.Exec(`
			UPDATE release_groups
			SET releases = releases + ?, total_bytes = total_bytes + ?,
				successes = successes + ?, failures = failures + ?, last_seen = ?
			WHERE id = ?`,
			m.Releases, m.Bytes, m.Successes, m.Failures, now, id)
		if err != nil {
			return 0, fmt.Errorf("update group %q: %w", canonical, mapSQLiteError(err))
		}
		return id, nil
	case ErrNotFound:
		result, err := q.Exec(`
			INSERT INTO release_groups (name, releases, total_bytes, successes, failures, first_seen, last_seen)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			canonical, m.Releases, m.Bytes, m.Successes, m.Failures, now, now)
		if err != nil {
			return 0, fmt.Errorf("insert group %q: %w", canonical, mapSQLiteError(err))
		}
		return result.LastInsertId()
	default:
		return 0, fmt.Errorf("lookup group %q: %w", canonical, mapSQLiteError(err))
	}
}

func groupNames(q querier) ([]string, error) {
	rows, err := q.Query(`SELECT name FROM release_groups`)
	if err != nil {
		return nil, fmt.Errorf("list group names: %w", mapSQLiteError(err))
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan group name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// ListGroups returns all release groups ordered by recorded releases.
func (s *Store) ListGroups() ([]*Group, error) {
	rows, err := s.db.Query(`
		SELECT id, name, releases, total_bytes, successes, failures, first_seen, last_seen
		FROM release_groups ORDER BY releases DESC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", mapSQLiteError(err))
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		g := &Group{}
		if err := rows.Scan(&g.ID, &g.Name, &g.Releases, &g.TotalBytes, &g.Successes,
			&g.Failures, &g.FirstSeen, &g.LastSeen); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// GetGroup retrieves one group by id. Returns ErrNotFound if absent.
func (s *Store) GetGroup(id int64) (*Group, error) {
	g := &Group{}
	err := s.db.QueryRow(`
		SELECT id, name, releases, total_bytes, successes, failures, first_seen, last_seen
		FROM release_groups WHERE id = ?`, id).
		Scan(&g.ID, &g.Name, &g.Releases, &g.TotalBytes, &g.Successes, &g.Failures, &g.FirstSeen, &g.LastSeen)
	if err != nil {
		return nil, fmt.Errorf("get group %d: %w", id, mapSQLiteError(err))
	}
	return g, nil
}
