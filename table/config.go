package table

import (
	"errors"
	"fmt"
)

// Index names are concatenated single digits, so the universe stops at 10.
const MaxBound = 10

var (
	ErrConfig       = errors.New("invalid table configuration")
	ErrInvalidTable = errors.New("invalid table")
)

// Source selects where the left parts of a partition row come from.
type Source int

const (
	// SourceSubsets filters the subset table, in power set order.
	SourceSubsets Source = iota
	// SourceEnumerator runs the partition enumerator, by ascending left size.
	SourceEnumerator
)

var sources = []string{"subsets", "enumerator"}

func (s Source) String() string {
	if int(s) < 0 || int(s) >= len(sources) {
		return fmt.Sprintf("Source(%d)", int(s))
	}
	return sources[s]
}

// ParseSource is the inverse of Source.String.
func ParseSource(name string) (Source, error) {
	for i, s := range sources {
		if s == name {
			return Source(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown source %q", ErrConfig, name)
}

// Config bounds the generated tables.
type Config struct {
	// Bound is N: subsets are drawn from {0, ..., Bound-1} and the last
	// partition row is for n = Bound.
	Bound int
	// Min is the first n with a partition row.
	Min    int
	Source Source
}

// DefaultConfig covers universes of up to ten elements, rows from n = 3.
func DefaultConfig() Config {
	return Config{
		Bound:  MaxBound,
		Min:    3,
		Source: SourceSubsets,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Bound < 1 || c.Bound > MaxBound:
		return fmt.Errorf("%w: bound %d outside [1, %d]", ErrConfig, c.Bound, MaxBound)
	case c.Min < 1:
		return fmt.Errorf("%w: min %d below 1", ErrConfig, c.Min)
	case c.Min > c.Bound:
		return fmt.Errorf("%w: min %d exceeds bound %d", ErrConfig, c.Min, c.Bound)
	case c.Source != SourceSubsets && c.Source != SourceEnumerator:
		return fmt.Errorf("%w: unknown source %v", ErrConfig, c.Source)
	}
	return nil
}

// Rows is the number of partition rows the configuration produces.
func (c Config) Rows() int {
	return c.Bound - c.Min + 1
}
