package implementation

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"time"

	"gorm.io/gorm/schema"
)

type trackingKey struct {
	table string
	key   string
}

type snapshot map[string]interface{}

// ChangeTracker keeps the last persisted column values of entities read or
// written through one unit of work.
type ChangeTracker struct {
	snapshots map[trackingKey]snapshot
}

func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{snapshots: make(map[trackingKey]snapshot)}
}

func (t *ChangeTracker) Track(sch *schema.Schema, value reflect.Value) {
	key, ok := keyOf(sch, value)
	if !ok {
		return
	}
	t.snapshots[key] = capture(sch, value)
}

func (t *ChangeTracker) Forget(sch *schema.Schema, primaryKey interface{}) {
	delete(t.snapshots, trackingKey{table: sch.Table, key: fmt.Sprint(primaryKey)})
}

func (t *ChangeTracker) IsTracked(sch *schema.Schema, value reflect.Value) bool {
	key, ok := keyOf(sch, value)
	if !ok {
		return false
	}
	_, found := t.snapshots[key]
	return found
}

// HasChanges compares every column of value against its snapshot.
// Untracked entities report true.
func (t *ChangeTracker) HasChanges(sch *schema.Schema, value reflect.Value) bool {
	key, ok := keyOf(sch, value)
	if !ok {
		return true
	}
	before, found := t.snapshots[key]
	if !found {
		return true
	}
	current := capture(sch, value)
	for column, old := range before {
		if !sameValue(old, current[column]) {
			return true
		}
	}
	return false
}

func (t *ChangeTracker) Len() int {
	return len(t.snapshots)
}

func (t *ChangeTracker) Clear() {
	t.snapshots = make(map[trackingKey]snapshot)
}

func keyOf(sch *schema.Schema, value reflect.Value) (trackingKey, bool) {
	pk := sch.PrioritizedPrimaryField
	if pk == nil {
		return trackingKey{}, false
	}
	v, zero := pk.ValueOf(context.Background(), value)
	if zero {
		return trackingKey{}, false
	}
	return trackingKey{table: sch.Table, key: fmt.Sprint(v)}, true
}

func capture(sch *schema.Schema, value reflect.Value) snapshot {
	snap := make(snapshot, len(sch.DBNames))
	for _, field := range sch.Fields {
		if field.DBName == "" {
			continue
		}
		v, _ := field.ValueOf(context.Background(), value)
		snap[field.DBName] = detach(v)
	}
	return snap
}

// detach dereferences pointers and copies byte slices so later mutation of
// the entity cannot leak into the snapshot.
func detach(v interface{}) interface{} {
	if v == nil {
		return nil
	}
	if b, ok := v.([]byte); ok {
		return append([]byte(nil), b...)
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		return detach(rv.Elem().Interface())
	}
	return v
}

func sameValue(a, b interface{}) bool {
	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}
	if ba, ok := a.([]byte); ok {
		bb, ok := b.([]byte)
		return ok && bytes.Equal(ba, bb)
	}
	return reflect.DeepEqual(a, b)
}
