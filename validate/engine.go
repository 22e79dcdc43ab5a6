// Package validate evaluates email address candidates and renders verdicts
// on them.
//
// The engine draws a hard line between verdicts and faults. A verdict is the
// engine doing its job: a Result saying the candidate is a well-formed
// address (with its local part, domain, and a domain trust score) or saying
// it is not (with the reason). A fault is the engine refusing the work:
// handing it something other than a string, a candidate longer than
// MaxLength, or an internal failure. Verdicts come back as *Result values;
// faults come back on the error return as *Error values. A misspelled
// address is never an error in the Go sense.
//
// Batch evaluation softens that line deliberately. Addresses and Values
// produce one Result per input item, in input order, and convert any
// per-item fault into a negative Result carrying the fault's message, so a
// single rotten item cannot sink the rest of the batch. Only the batch
// container itself is guarded: passing something other than a slice or
// array to Values is a fault.
//
// Evaluation of a well-formed candidate proceeds in two steps: the grammar
// check in package syntax, then domain scoring through the engine's Scorer,
// by default the shared table in package score. Evaluation is pure; the same
// candidate always yields the same Result, and nothing here touches the
// network or the DNS.
//
// Most callers never construct an Engine and just use the package-level
// functions, which share a lazily built default engine:
//
//	res, err := validate.Address("someone@example.com")
//	if err != nil {
//		// fault: the input could not be evaluated at all
//	}
//	if !res.IsValid {
//		// verdict: not an address; res.ErrorMessage says why
//	}
package validate

import (
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/zostay/go-mailcheck/score"
	"github.com/zostay/go-mailcheck/syntax"
)

// A Scorer assigns trust scores to domains on a 0 to 100 scale. The engine
// calls it once per positive verdict with the domain exactly as it appeared
// in the candidate. Implementations must be safe for concurrent use; the
// *score.Table type is the usual implementation.
type Scorer interface {
	Score(domain string) float64
}

// An Engine evaluates candidates. Engines are immutable once built and safe
// for concurrent use.
type Engine struct {
	scorer  Scorer
	workers int
}

// An Option configures an Engine under construction by New.
type Option func(*Engine)

// WithScorer is an Option that replaces the engine's domain scorer. The
// default is the shared score.Default table.
func WithScorer(s Scorer) Option {
	return func(e *Engine) { e.scorer = s }
}

// WithWorkers is an Option that sets how many goroutines a batch may spread
// across. Values less than or equal to 1 keep batch evaluation serial, which
// is the default and is plenty for typical batch sizes. Results come back in
// input order either way.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// New builds an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		scorer:  score.Default(),
		workers: 1,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.workers < 1 {
		e.workers = 1
	}

	return e
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the shared engine used by the package-level functions. It
// is built once, on first use, with no options.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New()
	})
	return defaultEngine
}

// Address evaluates a single candidate and returns the verdict. The error
// return carries faults only, always as *Error: a candidate longer than
// MaxLength or an internal engine failure. Every other outcome, including
// rejection, is a verdict in the Result.
func (e *Engine) Address(email string) (*Result, error) {
	if fault := checkLength(email); fault != nil {
		return nil, fault
	}
	return e.evaluate(email)
}

// Value is Address for callers holding input of unknown type, such as
// freshly decoded JSON. Anything other than a string is an InvalidInput
// fault.
func (e *Engine) Value(v any) (*Result, error) {
	email, fault := checkString(v)
	if fault != nil {
		return nil, fault
	}
	return e.Address(email)
}

// evaluate runs the grammar and the scorer over a candidate that has cleared
// the guard. Panics below here surface as EngineFault rather than crossing
// the API boundary.
func (e *Engine) evaluate(email string) (res *Result, err error) {
	defer func() {
		if pv := recover(); pv != nil {
			res, err = nil, panicFault(pv)
		}
	}()

	a, perr := syntax.Parse(email)
	if perr != nil {
		return negativeResult(perr.Error()), nil
	}

	return positiveResult(a, e.scorer.Score(a.Domain)), nil
}

// Addresses evaluates a batch of candidates and returns one Result per
// candidate, in input order. Candidates that would fault under Address get a
// negative Result carrying the fault's message instead, so the batch always
// completes. An empty batch returns an empty, non-nil slice.
func (e *Engine) Addresses(emails []string) []*Result {
	items := make([]any, len(emails))
	for i, email := range emails {
		items[i] = email
	}
	return e.batch(items)
}

// Values is Addresses for a batch of unknown type. The container must be a
// slice or an array; anything else is an InvalidInput fault. Items of the
// wrong type do not fault, they produce negative Results like any other
// per-item problem.
func (e *Engine) Values(v any) ([]*Result, error) {
	items, fault := checkSequence(v)
	if fault != nil {
		return nil, fault
	}
	return e.batch(items), nil
}

func (e *Engine) batch(items []any) []*Result {
	results := make([]*Result, len(items))

	if e.workers > 1 && len(items) > 1 {
		g := &errgroup.Group{}
		g.SetLimit(e.workers)
		for i, item := range items {
			i, item := i, item
			g.Go(func() error {
				results[i] = e.one(item)
				return nil
			})
		}
		// Workers write to distinct slots and never return errors.
		_ = g.Wait()
		return results
	}

	for i, item := range items {
		results[i] = e.one(item)
	}
	return results
}

// one converts faults into negative verdicts, which is what keeps a single
// bad item from sinking a batch.
func (e *Engine) one(v any) *Result {
	res, err := e.Value(v)
	if err != nil {
		return negativeResult(faultMessage(err))
	}
	return res
}

func faultMessage(err error) string {
	var fault *Error
	if errors.As(err, &fault) {
		return fault.Message
	}
	return err.Error()
}

// Address evaluates a single candidate with the Default engine. See
// Engine.Address.
func Address(email string) (*Result, error) {
	return Default().Address(email)
}

// Value evaluates a single candidate of unknown type with the Default
// engine. See Engine.Value.
func Value(v any) (*Result, error) {
	return Default().Value(v)
}

// Addresses evaluates a batch of candidates with the Default engine. See
// Engine.Addresses.
func Addresses(emails []string) []*Result {
	return Default().Addresses(emails)
}

// Values evaluates a batch of unknown type with the Default engine. See
// Engine.Values.
func Values(v any) ([]*Result, error) {
	return Default().Values(v)
}
