// Package search implements find/replace over the sparse cell grid.
//
// The engine never mutates the grid: replace operations return
// CellUpdate instructions for the grid owner to apply and persist.
// Independent concurrent searches need independent Engine instances.
package search

import (
	"sort"
	"strings"

	"github.com/1dking/Accountant-sub002/pkg/sheet/models"
	"github.com/1dking/Accountant-sub002/pkg/sheet/ref"
)

// CellUpdate instructs the grid owner to set the cell at Ref to Value.
type CellUpdate struct {
	Ref   string
	Value string
}

// Matches scans the grid for cells matching term and returns the hits
// ordered by (row, col) ascending, independent of map iteration order,
// so navigation is deterministic. An empty term yields no matches.
// Cell keys that fail to parse as references are skipped silently.
func Matches(grid *models.Sheet, term string, caseSensitive, wholeCell bool) []models.Match {
	if term == "" || grid == nil {
		return nil
	}

	needle := term
	if !caseSensitive {
		needle = strings.ToLower(needle)
	}

	var matches []models.Match
	for key, cell := range grid.Cells {
		if cell.Value == "" {
			continue
		}
		addr, ok := ref.Parse(key)
		if !ok {
			continue
		}
		hay := cell.Value
		if !caseSensitive {
			hay = strings.ToLower(hay)
		}
		if wholeCell {
			if hay != needle {
				continue
			}
		} else if !strings.Contains(hay, needle) {
			continue
		}
		matches = append(matches, models.Match{Ref: key, Row: addr.Row, Col: addr.Col})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Row != matches[j].Row {
			return matches[i].Row < matches[j].Row
		}
		return matches[i].Col < matches[j].Col
	})
	return matches
}

// Engine is one find/replace session: the query, its last-computed
// match list, and the navigation cursor.
type Engine struct {
	term          string
	replacement   string
	caseSensitive bool
	wholeCell     bool

	matches []models.Match
	cursor  int
}

// NewEngine returns an engine with no active query.
func NewEngine() *Engine {
	return &Engine{}
}

// SetQuery installs a new term/replacement/flags combination, recomputes
// matches against the grid, and resets the cursor to 0. It returns the
// first match, if any, for the caller to focus and scroll to.
func (e *Engine) SetQuery(grid *models.Sheet, term, replacement string, caseSensitive, wholeCell bool) (models.Match, bool) {
	e.term = term
	e.replacement = replacement
	e.caseSensitive = caseSensitive
	e.wholeCell = wholeCell
	return e.Refresh(grid)
}

// Refresh recomputes matches after the grid content changed. The cursor
// resets to 0 and the first match, if any, is returned for focus.
func (e *Engine) Refresh(grid *models.Sheet) (models.Match, bool) {
	e.matches = Matches(grid, e.term, e.caseSensitive, e.wholeCell)
	e.cursor = 0
	return e.Current()
}

// Matches returns the last-computed match list.
func (e *Engine) Matches() []models.Match {
	return e.matches
}

// Current returns the match under the cursor.
func (e *Engine) Current() (models.Match, bool) {
	if len(e.matches) == 0 {
		return models.Match{}, false
	}
	return e.matches[e.cursor], true
}

// Next advances the cursor, wrapping past the last match. No-op with
// zero matches.
func (e *Engine) Next() (models.Match, bool) {
	return e.step(1)
}

// Previous moves the cursor back, wrapping before the first match.
func (e *Engine) Previous() (models.Match, bool) {
	return e.step(-1)
}

func (e *Engine) step(delta int) (models.Match, bool) {
	if len(e.matches) == 0 {
		return models.Match{}, false
	}
	e.cursor = mod(e.cursor+delta, len(e.matches))
	return e.matches[e.cursor], true
}

// Replace produces the mutation for the currently matched cell only. It
// does not advance the cursor or re-scan; the caller applies the update
// and then calls Refresh.
func (e *Engine) Replace(grid *models.Sheet) (CellUpdate, bool) {
	m, ok := e.Current()
	if !ok {
		return CellUpdate{}, false
	}
	value := replaceTerm(grid.Value(m.Ref), e.term, e.replacement, e.caseSensitive)
	return CellUpdate{Ref: m.Ref, Value: value}, true
}

// ReplaceAll produces one mutation per matching cell, substring-replacing
// every occurrence of the term inside the cell value. It is a substring
// replace even in whole-cell mode, consistent with how matches were
// found. Returns nil when the term is empty or nothing matches.
func (e *Engine) ReplaceAll(grid *models.Sheet) []CellUpdate {
	if e.term == "" || len(e.matches) == 0 {
		return nil
	}
	updates := make([]CellUpdate, 0, len(e.matches))
	for _, m := range e.matches {
		value := replaceTerm(grid.Value(m.Ref), e.term, e.replacement, e.caseSensitive)
		updates = append(updates, CellUpdate{Ref: m.Ref, Value: value})
	}
	return updates
}

// mod is the non-negative modulo, so the cursor wraps at both ends.
func mod(a, n int) int {
	return ((a % n) + n) % n
}

// replaceTerm substitutes every occurrence of term in s. When the
// search was case-insensitive the replacement matches occurrences
// case-insensitively too.
func replaceTerm(s, term, replacement string, caseSensitive bool) string {
	if caseSensitive || term == "" {
		return strings.ReplaceAll(s, term, replacement)
	}
	lower := strings.ToLower(s)
	lterm := strings.ToLower(term)
	if len(lower) != len(s) {
		// Case folding changed byte offsets (rare, e.g. U+0130);
		// fall back to an exact replace.
		return strings.ReplaceAll(s, term, replacement)
	}
	var b strings.Builder
	for {
		i := strings.Index(lower, lterm)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		b.WriteString(replacement)
		s = s[i+len(lterm):]
		lower = lower[i+len(lterm):]
	}
}
