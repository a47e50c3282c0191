// Package repository translates list/filter/page requests into PostgreSQL
// queries and enforces soft-delete visibility on every statement.
package repository

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// parsePage parses a 1-based page number. Invalid or missing input falls back
// to page 1.
func parsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return defaultPage
	}
	return n
}

// parseLimit parses a page size. Invalid, missing or non-positive input falls
// back to 10; anything above 100 clamps to 100.
func parseLimit(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return defaultLimit
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}

// pageCount computes ceil(total/limit). parseLimit never yields a limit below
// 1, but the guard stays so a zero limit can never divide here.
func pageCount(total int64, limit int) int {
	if limit < 1 {
		limit = defaultLimit
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// orderClause resolves order_by against the entity's column allow-list.
// Unknown columns, and an absent order_by, order by id ascending regardless of
// direction. Only the exact literals "desc" and "DESC" flip the direction.
func orderClause(orderBy, direction string, allowed map[string]string) string {
	column, ok := allowed[strings.ToLower(orderBy)]
	if !ok {
		return "ORDER BY id ASC"
	}
	dir := "ASC"
	if direction == "desc" || direction == "DESC" {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s", column, dir)
}

// whereBuilder accumulates AND-ed conditions with positional placeholders.
// Every query starts from the soft-delete filter.
type whereBuilder struct {
	clauses []string
	args    []any
}

func newWhereBuilder() *whereBuilder {
	return &whereBuilder{clauses: []string{"deleted_at IS NULL"}}
}

// And appends a condition. expr must contain a single %d verb which receives
// the placeholder index for arg, e.g. `note LIKE $%d`.
func (b *whereBuilder) And(expr string, arg any) {
	b.args = append(b.args, arg)
	b.clauses = append(b.clauses, fmt.Sprintf(expr, len(b.args)))
}

func (b *whereBuilder) Clause() string {
	return strings.Join(b.clauses, " AND ")
}

func (b *whereBuilder) Args() []any {
	return b.args
}

// Next returns the placeholder index right after the accumulated args, for
// LIMIT/OFFSET parameters appended by the caller.
func (b *whereBuilder) Next() int {
	return len(b.args) + 1
}

// containsPattern wraps a trimmed search term for a substring LIKE match.
func containsPattern(term string) string {
	return "%" + strings.TrimSpace(term) + "%"
}
