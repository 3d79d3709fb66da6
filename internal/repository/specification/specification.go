package specification

import "gorm.io/gorm"

// Predicate is a single filter criterion translated into a WHERE clause.
type Predicate interface {
	Apply(db *gorm.DB) *gorm.DB
}

// PredicateFunc adapts a plain scope function to a Predicate.
type PredicateFunc func(db *gorm.DB) *gorm.DB

func (f PredicateFunc) Apply(db *gorm.DB) *gorm.DB {
	return f(db)
}

// Specification describes one query against the table of T: the conjunction
// of its predicates, relations to eager load, ordering and paging.
//
// A Specification is built per call and must not be mutated while a
// repository is executing it.
type Specification[T any] struct {
	predicates []Predicate
	includes   []string
	splitQuery bool
	orders     []OrderBy

	skip          int
	take          int
	pagingEnabled bool

	pageIndex int
	pageSize  int
}

// New builds a specification matching every row of T that satisfies all the
// given predicates. No predicates means match-all.
func New[T any](predicates ...Predicate) *Specification[T] {
	s := &Specification[T]{}
	for _, p := range predicates {
		s.AddFilter(p)
	}
	return s
}

// AddFilter narrows the result set: predicates are always ANDed.
func (s *Specification[T]) AddFilter(p Predicate) *Specification[T] {
	if p != nil {
		s.predicates = append(s.predicates, p)
	}
	return s
}

// ApplyInclude registers relation paths ("Author", "Author.Books") to eager load.
// Registering the same path twice has no effect.
func (s *Specification[T]) ApplyInclude(paths ...string) *Specification[T] {
	for _, path := range paths {
		if path == "" || s.hasInclude(path) {
			continue
		}
		s.includes = append(s.includes, path)
	}
	return s
}

// EnableSplitQuery loads every include with its own query and stitches the
// results in memory instead of joining them into the root query.
func (s *Specification[T]) EnableSplitQuery() *Specification[T] {
	s.splitQuery = true
	return s
}

func (s *Specification[T]) ApplyOrderBy(field string) *Specification[T] {
	s.orders = append(s.orders, OrderBy{Field: field})
	return s
}

func (s *Specification[T]) ApplyOrderByDescending(field string) *Specification[T] {
	s.orders = append(s.orders, OrderBy{Field: field, Desc: true})
	return s
}

// ApplyPaging sets the window of rows returned. Negative values are clamped to zero.
func (s *Specification[T]) ApplyPaging(skip, take int) *Specification[T] {
	if skip < 0 {
		skip = 0
	}
	if take < 0 {
		take = 0
	}
	s.skip = skip
	s.take = take
	s.pagingEnabled = true
	return s
}

// ApplyPagination records a 1-based page request. It is resolved into a
// paging window by the service once the total count is known.
func (s *Specification[T]) ApplyPagination(pageIndex, pageSize int) *Specification[T] {
	s.pageIndex = pageIndex
	s.pageSize = pageSize
	return s
}

func (s *Specification[T]) Predicates() []Predicate {
	return s.predicates
}

func (s *Specification[T]) Includes() []string {
	return s.includes
}

func (s *Specification[T]) IsSplitQuery() bool {
	return s.splitQuery
}

func (s *Specification[T]) Orders() []OrderBy {
	return s.orders
}

// Paging returns the paging window and whether one was set.
func (s *Specification[T]) Paging() (skip, take int, enabled bool) {
	return s.skip, s.take, s.pagingEnabled
}

// Page returns the requested page index and size (zero when unset).
func (s *Specification[T]) Page() (pageIndex, pageSize int) {
	return s.pageIndex, s.pageSize
}

// Where applies only the filter predicates. Counting uses this so ordering and
// paging never change a total.
func (s *Specification[T]) Where(db *gorm.DB) *gorm.DB {
	if s == nil {
		return db
	}
	for _, p := range s.predicates {
		db = p.Apply(db)
	}
	return db
}

// Apply applies predicates, ordering and the paging window.
func (s *Specification[T]) Apply(db *gorm.DB) *gorm.DB {
	if s == nil {
		return db
	}
	db = s.Where(db)
	for _, o := range s.orders {
		db = o.Apply(db)
	}
	if s.pagingEnabled {
		db = Window{Skip: s.skip, Take: s.take}.Apply(db)
	}
	return db
}

func (s *Specification[T]) hasInclude(path string) bool {
	for _, p := range s.includes {
		if p == path {
			return true
		}
	}
	return false
}
