package implementation

import (
	"context"
	stderrors "errors"
	"reflect"
	"strings"

	"elibrary-be/internal/repository/contract"
	"elibrary-be/internal/repository/specification"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

type GenericRepositoryImpl[T any, K comparable] struct {
	session *Session
	schema  *schema.Schema
}

func NewGenericRepository[T any, K comparable](session *Session) contract.Repository[T, K] {
	return &GenericRepositoryImpl[T, K]{
		session: session,
	}
}

func (r *GenericRepositoryImpl[T, K]) parse() (*schema.Schema, error) {
	if r.schema != nil {
		return r.schema, nil
	}
	stmt := &gorm.Statement{DB: r.session.db}
	if err := stmt.Parse(new(T)); err != nil {
		return nil, errors.Wrap(err, "parse entity schema")
	}
	if stmt.Schema.PrioritizedPrimaryField == nil {
		return nil, errors.Errorf("entity %s has no primary key", stmt.Schema.Name)
	}
	r.schema = stmt.Schema
	return r.schema, nil
}

func (r *GenericRepositoryImpl[T, K]) keyColumn(sch *schema.Schema) clause.Column {
	return clause.Column{Table: clause.CurrentTable, Name: sch.PrioritizedPrimaryField.DBName}
}

// applyIncludes eager loads relation paths. Split queries preload every path
// with its own statement; otherwise to-one relations are joined into the root
// query and collections fall back to a preload.
func (r *GenericRepositoryImpl[T, K]) applyIncludes(db *gorm.DB, sch *schema.Schema, spec *specification.Specification[T]) *gorm.DB {
	if spec == nil {
		return db
	}
	for _, path := range spec.Includes() {
		if spec.IsSplitQuery() || strings.Contains(path, ".") {
			db = db.Preload(path)
			continue
		}
		rel, ok := sch.Relationships.Relations[path]
		if ok && (rel.Type == schema.HasOne || rel.Type == schema.BelongsTo) {
			db = db.Joins(path)
		} else {
			db = db.Preload(path)
		}
	}
	return db
}

func (r *GenericRepositoryImpl[T, K]) query(ctx context.Context, spec *specification.Specification[T]) (*gorm.DB, *schema.Schema, error) {
	sch, err := r.parse()
	if err != nil {
		return nil, nil, err
	}
	db := r.session.conn(ctx).Model(new(T))
	db = r.applyIncludes(db, sch, spec)
	return spec.Apply(db), sch, nil
}

func (r *GenericRepositoryImpl[T, K]) track(sch *schema.Schema, rows ...*T) {
	for _, row := range rows {
		if row != nil {
			r.session.tracker.Track(sch, reflect.ValueOf(row))
		}
	}
}

func (r *GenericRepositoryImpl[T, K]) GetById(ctx context.Context, key K) (*T, error) {
	sch, err := r.parse()
	if err != nil {
		return nil, err
	}
	var m T
	err = r.session.conn(ctx).
		Where(clause.Eq{Column: r.keyColumn(sch), Value: key}).
		First(&m).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get %s by id", sch.Table)
	}
	r.track(sch, &m)
	return &m, nil
}

func (r *GenericRepositoryImpl[T, K]) GetWithSpec(ctx context.Context, spec *specification.Specification[T]) (*T, error) {
	q, sch, err := r.query(ctx, spec)
	if err != nil {
		return nil, err
	}
	var rows []*T
	if err := q.Limit(2).Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "get %s with specification", sch.Table)
	}
	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		r.track(sch, rows[0])
		return rows[0], nil
	default:
		return nil, contract.ErrAmbiguousMatch
	}
}

func (r *GenericRepositoryImpl[T, K]) GetAll(ctx context.Context) ([]*T, error) {
	return r.GetAllWithSpec(ctx, nil, true)
}

func (r *GenericRepositoryImpl[T, K]) GetAllWithSpec(ctx context.Context, spec *specification.Specification[T], tracked bool) ([]*T, error) {
	q, sch, err := r.query(ctx, spec)
	if err != nil {
		return nil, err
	}
	rows := make([]*T, 0)
	if err := q.Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "list %s", sch.Table)
	}
	if tracked {
		r.track(sch, rows...)
	}
	return rows, nil
}

func (r *GenericRepositoryImpl[T, K]) Count(ctx context.Context) (int64, error) {
	return r.CountWithSpec(ctx, nil)
}

func (r *GenericRepositoryImpl[T, K]) CountWithSpec(ctx context.Context, spec *specification.Specification[T]) (int64, error) {
	sch, err := r.parse()
	if err != nil {
		return 0, err
	}
	var count int64
	q := spec.Where(r.session.conn(ctx).Model(new(T)))
	if err := q.Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "count %s", sch.Table)
	}
	return count, nil
}

func (r *GenericRepositoryImpl[T, K]) Any(ctx context.Context, predicates ...specification.Predicate) (bool, error) {
	sch, err := r.parse()
	if err != nil {
		return false, err
	}
	rows := make([]*T, 0, 1)
	q := specification.New[T](predicates...).Where(r.session.conn(ctx).Model(new(T)))
	if err := q.Limit(1).Find(&rows).Error; err != nil {
		return false, errors.Wrapf(err, "any %s", sch.Table)
	}
	return len(rows) > 0, nil
}

func (r *GenericRepositoryImpl[T, K]) Add(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("add: nil entity")
	}
	sch, err := r.parse()
	if err != nil {
		return err
	}
	r.session.stage(pendingOperation{
		name: "insert " + sch.Table,
		exec: func(tx *gorm.DB) (int64, error) {
			res := tx.Create(entity)
			return res.RowsAffected, res.Error
		},
		onSaved: func() { r.track(sch, entity) },
	})
	return nil
}

func (r *GenericRepositoryImpl[T, K]) AddRange(ctx context.Context, entities []*T) error {
	if len(entities) == 0 {
		return nil
	}
	sch, err := r.parse()
	if err != nil {
		return err
	}
	r.session.stage(pendingOperation{
		name: "insert range " + sch.Table,
		exec: func(tx *gorm.DB) (int64, error) {
			res := tx.Create(entities)
			return res.RowsAffected, res.Error
		},
		onSaved: func() { r.track(sch, entities...) },
	})
	return nil
}

// Update writes every column of entity. Loaded relations are left untouched.
func (r *GenericRepositoryImpl[T, K]) Update(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("update: nil entity")
	}
	sch, err := r.parse()
	if err != nil {
		return err
	}
	r.session.stage(pendingOperation{
		name: "update " + sch.Table,
		exec: func(tx *gorm.DB) (int64, error) {
			res := tx.Model(entity).Select("*").Omit(clause.Associations).Updates(entity)
			return res.RowsAffected, res.Error
		},
		onSaved: func() { r.track(sch, entity) },
	})
	return nil
}

func (r *GenericRepositoryImpl[T, K]) Delete(ctx context.Context, key K) error {
	sch, err := r.parse()
	if err != nil {
		return err
	}
	r.session.stage(pendingOperation{
		name: "delete " + sch.Table,
		exec: func(tx *gorm.DB) (int64, error) {
			res := tx.Where(clause.Eq{Column: r.keyColumn(sch), Value: key}).Delete(new(T))
			return res.RowsAffected, res.Error
		},
		onSaved: func() { r.session.tracker.Forget(sch, key) },
	})
	return nil
}

func (r *GenericRepositoryImpl[T, K]) DeleteRange(ctx context.Context, keys []K) error {
	if len(keys) == 0 {
		return nil
	}
	sch, err := r.parse()
	if err != nil {
		return err
	}
	values := make([]interface{}, 0, len(keys))
	for _, k := range keys {
		values = append(values, k)
	}
	r.session.stage(pendingOperation{
		name: "delete range " + sch.Table,
		exec: func(tx *gorm.DB) (int64, error) {
			res := tx.Where(clause.IN{Column: r.keyColumn(sch), Values: values}).Delete(new(T))
			return res.RowsAffected, res.Error
		},
		onSaved: func() {
			for _, k := range keys {
				r.session.tracker.Forget(sch, k)
			}
		},
	})
	return nil
}

func (r *GenericRepositoryImpl[T, K]) HasChanges(entity *T) bool {
	if entity == nil {
		return false
	}
	sch, err := r.parse()
	if err != nil {
		return true
	}
	return r.session.tracker.HasChanges(sch, reflect.ValueOf(entity))
}
