// Package animation sequences frame indices and paces their presentation.
package animation

import (
	"context"
	"errors"
	"iter"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/quatviz/internal/logger"
)

// ErrStop can be returned by a present callback to end Run without error.
var ErrStop = errors.New("animation stopped")

// Frames yields 0..n-1 in order. With loop set it restarts at 0 after n-1
// and only ends when the consumer stops pulling. n < 1 yields nothing.
func Frames(n int, loop bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		if n < 1 {
			return
		}
		for {
			for i := 0; i < n; i++ {
				if !yield(i) {
					return
				}
			}
			if !loop {
				return
			}
		}
	}
}

// Pacer enforces a minimum delay between presented frames.
type Pacer struct {
	delay time.Duration
	last  time.Time
	now   func() time.Time
	sleep func(context.Context, time.Duration) error
}

// NewPacer creates a pacer with the given minimum frame delay.
func NewPacer(delay time.Duration) *Pacer {
	return &Pacer{
		delay: delay,
		now:   time.Now,
		sleep: sleepCtx,
	}
}

// Delay returns the configured minimum frame delay.
func (p *Pacer) Delay() time.Duration {
	return p.delay
}

// Wait blocks until at least the delay has passed since the previous Wait.
// The first call returns immediately.
func (p *Pacer) Wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !p.last.IsZero() && p.delay > 0 {
		if remaining := p.delay - p.now().Sub(p.last); remaining > 0 {
			if err := p.sleep(ctx, remaining); err != nil {
				return err
			}
		}
	}
	p.last = p.now()
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Driver pulls frames from a sequence and hands them to a presenter.
type Driver struct {
	frames iter.Seq[int]
	pacer  *Pacer
	log    *zap.Logger

	presented int
}

// NewDriver creates a driver over frames paced by pacer.
func NewDriver(frames iter.Seq[int], pacer *Pacer) *Driver {
	return &Driver{
		frames: frames,
		pacer:  pacer,
		log:    logger.Named("animation"),
	}
}

// Presented returns the number of frames presented so far.
func (d *Driver) Presented() int {
	return d.presented
}

// Run presents frames in order until the sequence ends, ctx is cancelled
// or present fails. Cancellation and ErrStop are clean exits.
func (d *Driver) Run(ctx context.Context, present func(frame int) error) error {
	d.log.Debug("animation started", zap.Duration("frame_delay", d.pacer.Delay()))

	for frame := range d.frames {
		if err := d.pacer.Wait(ctx); err != nil {
			return d.finish(err)
		}
		if err := present(frame); err != nil {
			return d.finish(err)
		}
		d.presented++
	}
	return d.finish(nil)
}

func (d *Driver) finish(err error) error {
	d.log.Debug("animation finished", zap.Int("presented", d.presented), zap.Error(err))
	if errors.Is(err, context.Canceled) || errors.Is(err, ErrStop) {
		return nil
	}
	return err
}
