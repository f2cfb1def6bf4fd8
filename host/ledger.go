package host

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ledger owns the shared storage, clock, authorization oracle, and event
// sink for a set of contract instances. All contract calls on one ledger are
// serialized by construction: Invoke frames each call so that either every
// storage write and event of the call commits, or none do. Nested Invoke
// calls (contract calling contract) join the enclosing transaction.
type Ledger struct {
	journal *Journal
	clock   Clock
	auth    Auth
	sink    EventSink
	log     *zap.Logger

	// Pending events, one slice per open invocation frame. Events roll back
	// with their frame and reach the sink only when the outermost frame
	// commits.
	pending [][]Event
}

// LedgerOption configures a Ledger.
type LedgerOption func(*Ledger)

// WithLogger sets the invocation trace logger. The default is a no-op logger.
func WithLogger(log *zap.Logger) LedgerOption {
	return func(l *Ledger) { l.log = log }
}

// NewLedger creates a ledger over the given backing store and collaborators.
func NewLedger(backing KVStore, clock Clock, auth Auth, sink EventSink, opts ...LedgerOption) *Ledger {
	l := &Ledger{
		journal: NewJournal(backing),
		clock:   clock,
		auth:    auth,
		sink:    sink,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Env returns the storage and host view for the contract at addr.
func (l *Ledger) Env(contract Address) *Env {
	return &Env{ledger: l, contract: contract}
}

// Now returns the current ledger timestamp.
func (l *Ledger) Now() uint64 { return l.clock.Now() }

// Invoke runs fn as one atomic contract call. On error all storage writes
// and events of the call are discarded and the error is returned unchanged.
func (l *Ledger) Invoke(op string, fn func() error) error {
	id := uuid.New()
	l.journal.Begin()
	l.pending = append(l.pending, nil)
	l.log.Debug("invoke",
		zap.String("op", op),
		zap.String("id", id.String()),
		zap.Int("depth", l.journal.Depth()))

	if err := fn(); err != nil {
		_ = l.journal.Discard()
		l.pending = l.pending[:len(l.pending)-1]
		l.log.Debug("invoke aborted",
			zap.String("op", op),
			zap.String("id", id.String()),
			zap.Error(err))
		return err
	}

	if err := l.journal.Commit(); err != nil {
		l.pending = l.pending[:len(l.pending)-1]
		return err
	}
	top := l.pending[len(l.pending)-1]
	l.pending = l.pending[:len(l.pending)-1]
	if len(l.pending) > 0 {
		parent := len(l.pending) - 1
		l.pending[parent] = append(l.pending[parent], top...)
	} else if l.sink != nil {
		for _, ev := range top {
			l.sink.Publish(ev)
		}
	}
	l.log.Debug("invoke committed",
		zap.String("op", op),
		zap.String("id", id.String()),
		zap.Int("events", len(top)))
	return nil
}

// publish buffers an event in the current invocation frame, or delivers it
// immediately when called outside any frame.
func (l *Ledger) publish(ev Event) {
	if len(l.pending) > 0 {
		top := len(l.pending) - 1
		l.pending[top] = append(l.pending[top], ev)
		return
	}
	if l.sink != nil {
		l.sink.Publish(ev)
	}
}
