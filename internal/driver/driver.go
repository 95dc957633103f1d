package driver

import (
	"fmt"

	"github.com/shapestone/shape-lex/internal/annotate"
	"github.com/shapestone/shape-lex/pkg/pattern"
	"github.com/shapestone/shape-lex/pkg/source"
)

// Kind tells what a Step did.
type Kind int

const (
	// Emit means a token was recognized.
	Emit Kind = iota
	// Skip means filler was consumed.
	Skip
	// End means the input is exhausted.
	End
	// Fail means no progress is possible at Step.Pos.
	Fail
)

func (k Kind) String() string {
	switch k {
	case Emit:
		return "Emit"
	case Skip:
		return "Skip"
	case End:
		return "End"
	case Fail:
		return "Fail"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Step is the result of one scanning step.
//
// Token is set for Emit. Span is set for Emit and Skip. Pos is the position
// scanning stopped at: the failure point for Fail, the end of input for End.
type Step[T any] struct {
	Kind  Kind
	Token T
	Span  source.Span
	Pos   source.Position
}

// Driver scans an annotated stream left to right.
//
// The zero Driver is not usable; create one with New. A Driver is not safe
// for concurrent use.
type Driver[T any] struct {
	matcher pattern.Matcher[Outcome[T]]
	rest    annotate.Stream
	final   *Step[T] // terminal step, once reached
}

// New returns a driver scanning rest with m, typically built by Combine.
func New[T any](m pattern.Matcher[Outcome[T]], rest annotate.Stream) *Driver[T] {
	return &Driver[T]{matcher: m, rest: rest}
}

// Step performs one longest match at the current position and advances past
// it. Once End or Fail is returned, every later call returns the same step.
func (d *Driver[T]) Step() Step[T] {
	if d.final != nil {
		return *d.final
	}

	pos := d.rest.Pos()
	if d.rest.Empty() {
		return d.stop(Step[T]{Kind: End, Pos: pos})
	}

	out, n, ok := d.matcher.Match(d.rest.Runes())
	switch {
	case !ok, n == 0:
		// Nothing matched, or a grammar matched the empty string: neither
		// lets the scan move forward.
		return d.stop(Step[T]{Kind: Fail, Pos: pos})
	case n > d.rest.Len():
		panic(fmt.Sprintf("driver: matcher consumed %d characters of %d at %s", n, d.rest.Len(), pos))
	}

	rest, last := d.rest.Drop(n)
	d.rest = rest

	span := source.Span{Start: pos, End: last.End}
	if next, ok := rest.Head(); ok {
		span.End = next.Start
	}

	if out.Filler {
		return Step[T]{Kind: Skip, Span: span, Pos: span.End}
	}
	return Step[T]{Kind: Emit, Token: out.Token, Span: span, Pos: span.End}
}

// Pos returns the position the next step starts from.
func (d *Driver[T]) Pos() source.Position {
	if d.final != nil {
		return d.final.Pos
	}
	return d.rest.Pos()
}

func (d *Driver[T]) stop(s Step[T]) Step[T] {
	d.final = &s
	return s
}
