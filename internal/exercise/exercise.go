package exercise

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/akmistry/intervalmap/internal/intervalmap"
	"github.com/akmistry/intervalmap/internal/util"
)

var (
	ErrInvalidOptions = errors.New("invalid exercise options")
	ErrMismatch       = errors.New("interval map mismatch")
	ErrNotCanonical   = errors.New("interval map not canonical")
)

const (
	defaultMin        = -10
	defaultMax        = 10
	defaultIterations = 10
	defaultBackground = 'X'
	defaultAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// MaxWindow is the largest key window Run will model densely.
	MaxWindow = 1 << 20
)

type Map = intervalmap.Map[int, byte]

// Step is a single assignment made by Run. Begin and End are drawn
// independently, so the range may be empty or inverted.
type Step struct {
	Index int
	Begin int
	End   int
	Value byte
}

func (s Step) NoOp() bool {
	return s.Begin >= s.End
}

type Options struct {
	// Keys are drawn from [Min, Max). Both zero means [-10, 10).
	Min, Max int

	Iterations int
	Seed       int64
	Background byte
	// Values are drawn from the bytes of Alphabet.
	Alphabet string

	// Called after each verified step.
	Observer func(Step, *Map)
}

func (o *Options) setDefaults() error {
	if o.Min == 0 && o.Max == 0 {
		o.Min, o.Max = defaultMin, defaultMax
	}
	util.SetDefaultIfZero(&o.Iterations, defaultIterations)
	util.SetDefaultIfZero(&o.Background, defaultBackground)
	util.SetDefaultIfZero(&o.Alphabet, defaultAlphabet)

	// Max-Min wraps negative when the window is wider than the int range.
	if o.Min >= o.Max {
		return fmt.Errorf("window [%d, %d) is empty: %w", o.Min, o.Max, ErrInvalidOptions)
	} else if span := o.Max - o.Min; span <= 0 || span > MaxWindow {
		return fmt.Errorf("window [%d, %d) wider than %d keys: %w", o.Min, o.Max, MaxWindow, ErrInvalidOptions)
	} else if o.Iterations < 0 {
		return fmt.Errorf("negative iterations %d: %w", o.Iterations, ErrInvalidOptions)
	}
	return nil
}

type Report struct {
	Steps         int
	NoOps         int
	MaxBoundaries int
}

// Run applies random assignments to a fresh map, checking it against a dense
// model of the window after every step.
func Run(opts Options) (*Report, error) {
	err := opts.setDefaults()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	m := intervalmap.New[int](opts.Background)
	c := newChecker(opts.Min, opts.Max, opts.Background)
	rep := &Report{}

	span := opts.Max - opts.Min
	for i := 0; i < opts.Iterations; i++ {
		s := Step{
			Index: i,
			Begin: opts.Min + rng.Intn(span),
			End:   opts.Min + rng.Intn(span),
			Value: opts.Alphabet[rng.Intn(len(opts.Alphabet))],
		}

		m.Assign(s.Begin, s.End, s.Value)
		c.assign(s)
		slog.Debug("exercise/Run: assign", "step", i, "begin", s.Begin, "end", s.End,
			"value", string(s.Value), "boundaries", m.Len())

		err = c.check(m)
		if err != nil {
			return rep, fmt.Errorf("step %d assign(%d, %d, %q): %w", i, s.Begin, s.End, s.Value, err)
		}
		err = c.checkIdempotent(m, s)
		if err != nil {
			return rep, fmt.Errorf("step %d assign(%d, %d, %q): %w", i, s.Begin, s.End, s.Value, err)
		}

		rep.Steps++
		if s.NoOp() {
			rep.NoOps++
		}
		rep.MaxBoundaries = max(rep.MaxBoundaries, m.Len())

		if opts.Observer != nil {
			opts.Observer(s, m)
		}
	}

	slog.Info("exercise/Run: done", "steps", rep.Steps, "noops", rep.NoOps,
		"max_boundaries", rep.MaxBoundaries)
	return rep, nil
}

// CheckCanonical returns an error wrapping ErrNotCanonical if any boundary of
// m repeats the value holding to its left.
func CheckCanonical[K any, V comparable](m *intervalmap.Map[K, V]) error {
	prev := m.Background()
	for i, b := range m.Boundaries() {
		if b.Value == prev {
			return fmt.Errorf("boundary %d at %v repeats value %v: %w", i, b.Key, b.Value, ErrNotCanonical)
		}
		prev = b.Value
	}
	return nil
}
