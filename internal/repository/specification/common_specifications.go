package specification

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ByColumn matches rows whose column equals Value. The column is qualified
// with the queried table so it stays unambiguous next to joined includes.
type ByColumn struct {
	Column string
	Value  interface{}
}

func (s ByColumn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: s.Column}, Value: s.Value})
}

type InColumn struct {
	Column string
	Values []interface{}
}

func (s InColumn) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(clause.IN{Column: clause.Column{Table: clause.CurrentTable, Name: s.Column}, Values: s.Values})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern wraps term for a LIKE ... ESCAPE '\' match, so wildcards in
// user input match literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// Contains is a case-insensitive substring match
type Contains struct {
	Column string
	Term   string
}

func (s Contains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf(`LOWER(%s) LIKE LOWER(?) ESCAPE '\'`, db.Statement.Quote(s.Column)), containsPattern(s.Term))
}

type OrderBy struct {
	Field string
	Desc  bool
}

func (s OrderBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: s.Field}, Desc: s.Desc})
}

// Window skips Skip rows and returns at most Take.
type Window struct {
	Skip int
	Take int
}

func (s Window) Apply(db *gorm.DB) *gorm.DB {
	return db.Offset(s.Skip).Limit(s.Take)
}
