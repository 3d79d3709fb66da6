package implementation

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type pendingOperation struct {
	name    string
	exec    func(tx *gorm.DB) (int64, error)
	onSaved func()
}

// Session is the state shared by every repository of one unit of work: the
// connection (or open transaction), staged writes and the change tracker.
// It is not safe for concurrent use.
type Session struct {
	db      *gorm.DB
	tx      *gorm.DB
	tracker *ChangeTracker
	pending []pendingOperation
	// callbacks of writes flushed inside an explicit transaction, run on Commit
	deferred []func()
}

func NewSession(db *gorm.DB) *Session {
	return &Session{
		db:      db,
		tracker: NewChangeTracker(),
	}
}

func (s *Session) conn(ctx context.Context) *gorm.DB {
	if s.tx != nil {
		return s.tx.WithContext(ctx)
	}
	return s.db.WithContext(ctx)
}

func (s *Session) Tracker() *ChangeTracker {
	return s.tracker
}

func (s *Session) InTransaction() bool {
	return s.tx != nil
}

func (s *Session) PendingCount() int {
	return len(s.pending)
}

func (s *Session) stage(op pendingOperation) {
	s.pending = append(s.pending, op)
}

func (s *Session) Begin(ctx context.Context) error {
	if s.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	s.tx = tx
	return nil
}

func (s *Session) Commit() error {
	if s.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := s.tx.Commit().Error
	s.tx = nil
	if err != nil {
		s.deferred = nil
		s.tracker.Clear()
		return err
	}
	for _, fn := range s.deferred {
		fn()
	}
	s.deferred = nil
	return nil
}

// Rollback discards the transaction and everything tracked inside it.
func (s *Session) Rollback() error {
	if s.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := s.tx.Rollback().Error
	s.tx = nil
	s.pending = nil
	s.deferred = nil
	s.tracker.Clear()
	return err
}

// Flush executes every staged operation in order and returns the total number
// of affected rows. Without an explicit transaction the batch runs in its own
// transaction; inside one, it joins it and Commit finalizes it. Staged
// operations are consumed whether or not the flush succeeds.
func (s *Session) Flush(ctx context.Context) (int64, error) {
	ops := s.pending
	s.pending = nil
	if len(ops) == 0 {
		return 0, nil
	}

	var affected int64
	run := func(tx *gorm.DB) error {
		for _, op := range ops {
			n, err := op.exec(tx)
			if err != nil {
				return errors.Wrapf(err, "save changes: %s", op.name)
			}
			affected += n
		}
		return nil
	}

	if s.tx != nil {
		if err := run(s.tx.WithContext(ctx)); err != nil {
			return 0, err
		}
		for _, op := range ops {
			if op.onSaved != nil {
				s.deferred = append(s.deferred, op.onSaved)
			}
		}
		return affected, nil
	}

	if err := s.db.WithContext(ctx).Transaction(run); err != nil {
		return 0, err
	}
	for _, op := range ops {
		if op.onSaved != nil {
			op.onSaved()
		}
	}
	return affected, nil
}
