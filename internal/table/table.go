// Package table filters and sorts already-projected routine and playlist
// rows. It runs over the in-memory snapshot a request fetched; it never
// queries the store. All state lives in the Query value parsed from the URL
// (q, g, sort, dir), which keeps filtered views sharable as links.
package table

import (
	"sort"
	"strings"

	"github.com/shishigami87/aimroutines/internal/services"
)

// GameAny is the sentinel that clears the game filter.
const GameAny = "ANY"

type SortDirection string

const (
	SortNone SortDirection = ""
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Query is the request-scoped table configuration.
type Query struct {
	Text       string
	Game       string
	SortColumn string
	SortDir    SortDirection
}

// ParseSortDirection maps the raw dir param; anything unrecognized leaves
// the rows unsorted, matching the header cycle's third state.
func ParseSortDirection(raw string) SortDirection {
	switch strings.ToLower(raw) {
	case "asc":
		return SortAsc
	case "desc":
		return SortDesc
	default:
		return SortNone
	}
}

// matchesText implements the title/share-code text filter. Share codes are
// only consulted when the query carries the "kovaaks" prefix; the codes are
// opaque strings that would otherwise collide with arbitrary title
// substrings.
func matchesText(title string, references []string, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(title), q) {
		return true
	}
	if !strings.HasPrefix(q, "kovaaks") {
		return false
	}
	for _, ref := range references {
		if strings.Contains(strings.ToLower(ref), q) {
			return true
		}
	}
	return false
}

func matchesGame(game string, filter string) bool {
	if filter == "" || strings.EqualFold(filter, GameAny) {
		return true
	}
	return strings.EqualFold(game, filter)
}

// ApplyRoutines filters and sorts routine views. Filters run first, then the
// single active sort column. The input slice is not modified.
func ApplyRoutines(rows []services.RoutineView, q Query) []services.RoutineView {
	out := make([]services.RoutineView, 0, len(rows))
	for _, row := range rows {
		if q.Text != "" {
			refs := make([]string, 0, len(row.Playlists))
			for _, p := range row.Playlists {
				refs = append(refs, p.Reference)
			}
			if !matchesText(row.Title, refs, q.Text) {
				continue
			}
		}
		if !matchesGame(string(row.Game), q.Game) {
			continue
		}
		out = append(out, row)
	}

	sortRows(out, q, func(row services.RoutineView) (int, string, string, string) {
		return row.Likes, row.Title, row.Author, string(row.Game)
	})

	return out
}

// ApplyPlaylists is the standalone-playlist counterpart. The text filter
// checks the playlist's own reference under the same "kovaaks" prefix guard.
func ApplyPlaylists(rows []services.PlaylistView, q Query) []services.PlaylistView {
	out := make([]services.PlaylistView, 0, len(rows))
	for _, row := range rows {
		if q.Text != "" && !matchesText(row.Title, []string{row.Reference}, q.Text) {
			continue
		}
		if !matchesGame(string(row.Game), q.Game) {
			continue
		}
		out = append(out, row)
	}

	sortRows(out, q, func(row services.PlaylistView) (int, string, string, string) {
		return row.Likes, row.Title, row.Author, string(row.Game)
	})

	return out
}

// sortRows applies the active sort column. Stable so that equal keys keep
// the projection's likes-descending order.
func sortRows[T any](rows []T, q Query, fields func(T) (likes int, title, author, game string)) {
	if q.SortDir == SortNone {
		return
	}

	var less func(a, b T) bool

	switch q.SortColumn {
	case "likes":
		less = func(a, b T) bool {
			al, _, _, _ := fields(a)
			bl, _, _, _ := fields(b)
			return al < bl
		}
	case "title":
		less = func(a, b T) bool {
			_, at, _, _ := fields(a)
			_, bt, _, _ := fields(b)
			return strings.ToLower(at) < strings.ToLower(bt)
		}
	case "author":
		less = func(a, b T) bool {
			_, _, aa, _ := fields(a)
			_, _, ba, _ := fields(b)
			return strings.ToLower(aa) < strings.ToLower(ba)
		}
	case "game":
		less = func(a, b T) bool {
			_, _, _, ag := fields(a)
			_, _, _, bg := fields(b)
			return ag < bg
		}
	default:
		return
	}

	if q.SortDir == SortDesc {
		inner := less
		less = func(a, b T) bool { return inner(b, a) }
	}

	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
}
