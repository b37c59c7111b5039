// Package rdrand implements reliable access to a hardware digital random
// number generator (the x86 RDRAND instruction).
//
// A single hardware request may transiently fail. The Generator turns that
// unreliable primitive into a reliable one by retrying each request a
// bounded number of times, and builds bias-free range reduction, buffer
// filling and reseed-guaranteed seed generation on top of it.
package rdrand

import (
	"math"
	"sync/atomic"

	"github.com/oasisprotocol/rdrand/common/errors"
	"github.com/oasisprotocol/rdrand/common/logging"
)

const (
	// ModuleName is the module name used for errors and logging.
	ModuleName = "common/crypto/rdrand"

	// DefaultRetryLimit is the default number of consecutive failed
	// hardware requests tolerated before a fetch fails. Intel recommends
	// 10; ten consecutive failures indicate a larger problem with the CPU.
	DefaultRetryLimit = 10

	// MaxRetryLimit is the largest accepted retry limit.
	MaxRetryLimit = math.MaxUint32

	// ReseedWindow is the number of consecutive 64-bit generations after
	// which the DRNG is guaranteed to have reseeded its conditioner from
	// the entropy source.
	//
	// NOTE: This is a property of current Intel DRNG implementations and
	//       must be checked against the vendor documentation for the
	//       hardware in use.
	ReseedWindow = 1022

	logEventRetryExhausted = "rdrand/retry_exhausted"
	logEventReseedFailed   = "rdrand/reseed_failed"
)

var (
	// ErrNotSupported is the error returned when the hardware does not
	// implement the random number instruction.
	ErrNotSupported = errors.New(ModuleName, 1, "rdrand: instruction not supported")

	// ErrRetryExhausted is the error returned when every attempt of a
	// single fetch failed.
	ErrRetryExhausted = errors.New(ModuleName, 2, "rdrand: retry limit exhausted")

	// ErrReseedIncomplete is the error returned when the reseed window
	// could not be completed.
	ErrReseedIncomplete = errors.New(ModuleName, 3, "rdrand: reseed window incomplete")

	// ErrInvalidRetryLimit is the error returned when the retry limit is
	// not in [1, MaxRetryLimit].
	ErrInvalidRetryLimit = errors.New(ModuleName, 4, "rdrand: invalid retry limit")

	// ErrInvalidReseedWindow is the error returned when the reseed window
	// is not positive.
	ErrInvalidReseedWindow = errors.New(ModuleName, 5, "rdrand: invalid reseed window")

	// ErrInvalidCount is the error returned when a negative number of
	// values is requested.
	ErrInvalidCount = errors.New(ModuleName, 6, "rdrand: invalid count")
)

// Generator is a reliable random number generator over a Source.
//
// It is safe for concurrent use.
type Generator struct {
	src Source

	retryLimit   uint32
	reseedWindow int

	logger *logging.Logger
}

// Option is a configuration option used when instantiating a Generator.
type Option func(g *Generator) error

// WithRetryLimit sets the initial retry limit.
func WithRetryLimit(k int) Option {
	return func(g *Generator) error {
		if err := checkRetryLimit(k); err != nil {
			return err
		}
		g.retryLimit = uint32(k)
		return nil
	}
}

// WithReseedWindow overrides the reseed window used by Seed.
func WithReseedWindow(n int) Option {
	return func(g *Generator) error {
		if n < 1 {
			return errors.WithContextf(ErrInvalidReseedWindow, "%d", n)
		}
		g.reseedWindow = n
		return nil
	}
}

func checkRetryLimit(k int) error {
	if k < 1 || uint64(k) > MaxRetryLimit {
		return errors.WithContextf(ErrInvalidRetryLimit, "%d", k)
	}
	return nil
}

// New creates a new Generator over the given source.
func New(src Source, options ...Option) (*Generator, error) {
	initMetrics()

	g := &Generator{
		src:          src,
		retryLimit:   DefaultRetryLimit,
		reseedWindow: ReseedWindow,
		logger:       logging.GetLogger(ModuleName),
	}
	for _, v := range options {
		if err := v(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// CheckSupport returns ErrNotSupported iff the source is unusable.
func (g *Generator) CheckSupport() error {
	if !g.src.Supported() {
		return ErrNotSupported
	}
	return nil
}

// RetryLimit returns the current retry limit.
func (g *Generator) RetryLimit() int {
	return int(atomic.LoadUint32(&g.retryLimit))
}

// SetRetryLimit changes the number of consecutive failed hardware requests
// tolerated by every subsequent fetch.
func (g *Generator) SetRetryLimit(k int) error {
	if err := checkRetryLimit(k); err != nil {
		return err
	}

	old := atomic.SwapUint32(&g.retryLimit, uint32(k))
	g.logger.Info("retry limit changed",
		"old", old,
		"new", k,
	)
	return nil
}

// ReseedWindow returns the number of generations Seed issues per seed.
func (g *Generator) ReseedWindow() int {
	return g.reseedWindow
}
