// Package heading provides magnetic heading sources and the handoff that
// moves their readings onto a single consumer.
//
// A Source runs on its own goroutine and emits readings whenever it has
// them. Subscribe connects a Source to a depth-1 Mailbox, so a slow
// consumer only ever sees the most recent reading.
package heading

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wesen/sanpo/pkg/perimeter"
)

var (
	// ErrUnavailable wraps the reason a source stopped delivering headings
	// (sensor absent, bus error, bad script).
	ErrUnavailable = errors.New("heading unavailable")
	// ErrClosed is returned by Next once the subscription is closed or the
	// source returned without an error.
	ErrClosed = errors.New("heading subscription closed")
)

// Reading is one heading sample in degrees clockwise from magnetic
// north, in [0, 360).
type Reading struct {
	Degrees float64
	At      time.Time
}

// NewReading normalizes deg and stamps it with at.
func NewReading(deg float64, at time.Time) Reading {
	return Reading{Degrees: perimeter.Normalize(deg), At: at}
}

// Source produces headings. Run blocks until ctx is done (returning
// ctx.Err()) or the source fails. emit may be called from any goroutine
// Run starts, but never concurrently.
type Source interface {
	Run(ctx context.Context, emit func(Reading)) error
}

// Named is implemented by sources that can describe themselves for the
// status line.
type Named interface {
	Name() string
}

// NameOf returns the source's name, or its Go type if it has none.
func NameOf(src Source) string {
	if n, ok := src.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", src)
}

func logger() *zerolog.Logger {
	l := log.With().Str("module", "heading").Logger()
	return &l
}

// Mailbox is a latest-value-wins handoff of depth one. Put never blocks;
// a reading nobody has taken yet is replaced.
type Mailbox struct {
	mu sync.Mutex
	ch chan Reading
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	return &Mailbox{ch: make(chan Reading, 1)}
}

// Put stores r, dropping any reading still pending.
func (m *Mailbox) Put(r Reading) {
	m.mu.Lock()
	defer m.mu.Unlock()
	select {
	case <-m.ch:
	default:
	}
	m.ch <- r
}

// C returns the channel readings are delivered on.
func (m *Mailbox) C() <-chan Reading {
	return m.ch
}

// Subscription is a running Source bound to a Mailbox. It must be
// closed to stop the source goroutine.
type Subscription struct {
	name   string
	box    *Mailbox
	cancel context.CancelFunc
	done   chan struct{}
	err    error // written before done is closed
}

// Subscribe starts src on a new goroutine. Readings are available
// through Next until the source stops or Close is called.
func Subscribe(ctx context.Context, src Source) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	s := &Subscription{
		name:   NameOf(src),
		box:    NewMailbox(),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go s.run(ctx, src)
	return s
}

func (s *Subscription) run(ctx context.Context, src Source) {
	defer close(s.done)
	l := logger()
	l.Info().Str("source", s.name).Msg("source started")

	err := src.Run(ctx, s.box.Put)
	switch {
	case err == nil, errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.err = ErrClosed
		l.Info().Str("source", s.name).Msg("source stopped")
	default:
		s.err = fmt.Errorf("%w: %s: %w", ErrUnavailable, s.name, err)
		l.Error().Err(err).Str("source", s.name).Msg("source failed")
	}
}

// Name returns the name of the subscribed source.
func (s *Subscription) Name() string { return s.name }

// Next blocks until a reading is available and returns the latest one.
// Once the source has stopped, pending readings are still returned
// before the stop reason.
func (s *Subscription) Next(ctx context.Context) (Reading, error) {
	select {
	case r := <-s.box.C():
		return r, nil
	case <-s.done:
		select {
		case r := <-s.box.C():
			return r, nil
		default:
		}
		return Reading{}, s.err
	case <-ctx.Done():
		return Reading{}, ctx.Err()
	}
}

// Err returns why the source stopped, or nil while it is running.
func (s *Subscription) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

// Close stops the source and waits for its goroutine to exit.
func (s *Subscription) Close() {
	s.cancel()
	<-s.done
}
