// Package filter composes sparse, optional query fields into storage predicates.
package filter

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Kind identifies how a clause compares its column
type Kind int

const (
	KindContains Kind = iota
	KindEquals
	KindBool
	KindDateFrom
	KindDateTo
	KindIn
	KindSoftDelete
	KindRaw
)

func (k Kind) String() string {
	switch k {
	case KindContains:
		return "contains"
	case KindEquals:
		return "equals"
	case KindBool:
		return "bool"
	case KindDateFrom:
		return "date_from"
	case KindDateTo:
		return "date_to"
	case KindIn:
		return "in"
	case KindSoftDelete:
		return "soft_delete"
	default:
		return "raw"
	}
}

// Clause is a single typed condition of a predicate
type Clause struct {
	Kind   Kind
	Column string
	SQL    string
	Args   []interface{}
}

// DeletedMode controls the soft-delete clause
type DeletedMode int

const (
	// ExcludeDeleted keeps soft-deleted rows out. It is the zero value.
	ExcludeDeleted DeletedMode = iota
	OnlyDeleted
	IncludeDeleted
)

// DeletedModeFromRaw maps an explicit deletion-status override. A nil or empty value keeps
// the default; "true" selects deleted rows, "false" live rows and "all" both.
func DeletedModeFromRaw(raw *string) DeletedMode {
	if raw == nil {
		return ExcludeDeleted
	}
	v := strings.ToLower(strings.TrimSpace(*raw))
	switch v {
	case "all", "any":
		return IncludeDeleted
	case "":
		return ExcludeDeleted
	}
	if CoerceBool(v, false) {
		return OnlyDeleted
	}
	return ExcludeDeleted
}

// Builder accumulates clauses. A clause is only added when its value was supplied.
type Builder struct {
	clauses []Clause
}

// New creates an empty builder
func New() *Builder {
	return &Builder{}
}

// Contains adds a case-insensitive substring match
func (b *Builder) Contains(column string, value *string) *Builder {
	v, ok := present(value)
	if !ok {
		return b
	}
	return b.add(Clause{
		Kind:   KindContains,
		Column: column,
		SQL:    fmt.Sprintf(`LOWER(%s) LIKE LOWER(?) ESCAPE '\'`, column),
		Args:   []interface{}{"%" + escapeLike(v) + "%"},
	})
}

// EqualsString adds an exact string match
func (b *Builder) EqualsString(column string, value *string) *Builder {
	v, ok := present(value)
	if !ok {
		return b
	}
	return b.add(Clause{
		Kind:   KindEquals,
		Column: column,
		SQL:    column + " = ?",
		Args:   []interface{}{v},
	})
}

// Equals adds a numeric equality match
func (b *Builder) Equals(column string, value *int64) *Builder {
	if value == nil {
		return b
	}
	return b.add(Clause{
		Kind:   KindEquals,
		Column: column,
		SQL:    column + " = ?",
		Args:   []interface{}{*value},
	})
}

// Bool adds a boolean match, coercing raw with CoerceBool
func (b *Builder) Bool(column string, raw *string, fallback bool) *Builder {
	v, ok := present(raw)
	if !ok {
		return b
	}
	return b.add(Clause{
		Kind:   KindBool,
		Column: column,
		SQL:    column + " = ?",
		Args:   []interface{}{CoerceBool(v, fallback)},
	})
}

// DateRange adds one clause per supplied bound. Both bounds are inclusive.
func (b *Builder) DateRange(column string, from, to *time.Time) *Builder {
	if from != nil {
		b.add(Clause{
			Kind:   KindDateFrom,
			Column: column,
			SQL:    column + " >= ?",
			Args:   []interface{}{*from},
		})
	}
	if to != nil {
		b.add(Clause{
			Kind:   KindDateTo,
			Column: column,
			SQL:    column + " <= ?",
			Args:   []interface{}{*to},
		})
	}
	return b
}

// In adds a membership clause. A nil or empty slice adds nothing; empty scopes are
// short-circuited before a query is built.
func (b *Builder) In(column string, ids []int64) *Builder {
	if len(ids) == 0 {
		return b
	}
	return b.add(Clause{
		Kind:   KindIn,
		Column: column,
		SQL:    column + " IN ?",
		Args:   []interface{}{ids},
	})
}

// SoftDelete adds the deletion-status clause for mode
func (b *Builder) SoftDelete(column string, mode DeletedMode) *Builder {
	switch mode {
	case IncludeDeleted:
		return b
	case OnlyDeleted:
		return b.add(Clause{Kind: KindSoftDelete, Column: column, SQL: column + " = ?", Args: []interface{}{true}})
	default:
		return b.add(Clause{Kind: KindSoftDelete, Column: column, SQL: column + " = ?", Args: []interface{}{false}})
	}
}

// Raw adds an arbitrary condition
func (b *Builder) Raw(sql string, args ...interface{}) *Builder {
	return b.add(Clause{Kind: KindRaw, SQL: sql, Args: args})
}

// Build returns the accumulated predicate
func (b *Builder) Build() Predicate {
	clauses := make([]Clause, len(b.clauses))
	copy(clauses, b.clauses)
	return Predicate{clauses: clauses}
}

func (b *Builder) add(c Clause) *Builder {
	b.clauses = append(b.clauses, c)
	return b
}

// Predicate is an immutable set of clauses joined with AND
type Predicate struct {
	clauses []Clause
}

// Clauses returns a copy of the predicate's clauses
func (p Predicate) Clauses() []Clause {
	out := make([]Clause, len(p.clauses))
	copy(out, p.clauses)
	return out
}

// IsEmpty reports whether the predicate imposes no constraint
func (p Predicate) IsEmpty() bool {
	return len(p.clauses) == 0
}

// Has reports whether a clause of kind exists on column
func (p Predicate) Has(kind Kind, column string) bool {
	for _, c := range p.clauses {
		if c.Kind == kind && c.Column == column {
			return true
		}
	}
	return false
}

// Scope returns a GORM scope that applies every clause
func (p Predicate) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, c := range p.clauses {
			db = db.Where(c.SQL, c.Args...)
		}
		return db
	}
}

// CoerceBool converts "true"/"false" strings and native booleans. Anything else yields fallback.
func CoerceBool(value interface{}, fallback bool) bool {
	switch v := value.(type) {
	case bool:
		return v
	case *bool:
		if v == nil {
			return fallback
		}
		return *v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true":
			return true
		case "false":
			return false
		}
	case *string:
		if v != nil {
			return CoerceBool(*v, fallback)
		}
	}
	return fallback
}

func present(value *string) (string, bool) {
	if value == nil {
		return "", false
	}
	v := strings.TrimSpace(*value)
	return v, v != ""
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(v string) string {
	return likeEscaper.Replace(v)
}
