/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package backoff

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/voedger/backoff/pkg/goutils/logger"
	"github.com/voedger/backoff/pkg/goutils/timeu"
)

// With returns a copy of p with opts applied
// p is left untouched if an option fails
func (p Policy) With(opts ...Option) (Policy, error) {
	res := p
	res.observers = slices.Clone(p.observers)
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return p, err
		}
	}
	return res, nil
}

func (p Policy) WithMaxRetries(n int) (Policy, error) {
	return p.With(WithMaxRetries(n))
}

func (p Policy) WithInitialWaitPeriod(d time.Duration) (Policy, error) {
	return p.With(WithInitialWaitPeriod(d))
}

func (p Policy) MaxRetries() int                  { return p.maxRetries }
func (p Policy) InitialWaitPeriod() time.Duration { return p.initialWaitPeriod }
func (p Policy) GrowthFactor() float64            { return p.growthFactor }
func (p Policy) Name() string                     { return p.name }

// Schedule returns the first min(limit, MaxRetries()) periods a fully failing execution sleeps, in order
func (p Policy) Schedule(limit int) []time.Duration {
	n := max(min(limit, p.maxRetries), 0)
	res := make([]time.Duration, 0, n)
	waitPeriod := p.initialWaitPeriod
	for i := 0; i < n; i++ {
		res = append(res, waitPeriod)
		waitPeriod = grow(waitPeriod, p.growthFactor)
	}
	return res
}

// MaxTotalWait is the sum of all periods a fully failing execution sleeps, saturated at math.MaxInt64
func (p Policy) MaxTotalWait() time.Duration {
	var total time.Duration
	waitPeriod := p.initialWaitPeriod
	for left := p.maxRetries; left > 0 && total < maxWaitPeriod; left-- {
		next := grow(waitPeriod, p.growthFactor)
		if next == waitPeriod {
			// the period does not grow anymore
			return addSaturated(total, mulSaturated(waitPeriod, left))
		}
		total = addSaturated(total, waitPeriod)
		waitPeriod = next
	}
	return total
}

// Execute calls op until it returns nil or the retry budget is spent
// budget spent -> *RetriableOperationFailedError wrapping the last error of op
// ctx done while waiting -> error wrapping both ctx.Err() and the last error of op
func (p Policy) Execute(ctx context.Context, op func() error) error {
	if op == nil {
		panic("backoff: nil operation")
	}
	_, err := run(ctx, p, func() (struct{}, error) {
		return struct{}{}, op()
	})
	return err
}

// Supply is Execute for operations that produce a value
func Supply[T any](ctx context.Context, p Policy, op func() (T, error)) (T, error) {
	if op == nil {
		panic("backoff: nil operation")
	}
	return run(ctx, p, op)
}

func run[T any](ctx context.Context, p Policy, op func() (T, error)) (T, error) {
	var zero T
	if logger.IsVerbose() {
		ctx = logger.WithContextAttrs(ctx, logger.LogAttr_Op, p.name)
		ctx = logger.WithContextAttrs(ctx, logger.LogAttr_ExecID, uuid.NewString())
	}
	waitPeriod := p.initialWaitPeriod
	for attempt := 1; ; attempt++ {
		res, err := op()
		if err == nil {
			for _, o := range p.observers {
				o.OnSucceeded(p.name, attempt)
			}
			return res, nil
		}

		if attempt > p.maxRetries {
			for _, o := range p.observers {
				o.OnAttemptFailed(p.name, attempt, 0, err)
				o.OnExhausted(p.name, attempt, err)
			}
			if logger.IsVerbose() {
				logger.VerboseCtx(ctx, fmt.Sprintf("attempt %d failed, no retries left: %v", attempt, err))
			}
			return zero, &RetriableOperationFailedError{
				Name:     p.name,
				Attempts: attempt,
				Cause:    err,
			}
		}

		for _, o := range p.observers {
			o.OnAttemptFailed(p.name, attempt, waitPeriod, err)
		}
		if logger.IsVerbose() {
			logger.VerboseCtx(ctx, fmt.Sprintf("attempt %d of %d failed: %v, retrying in %v", attempt, p.maxRetries+1, err, waitPeriod))
		}
		if ctxErr := timeu.SleepCtx(ctx, p.clock(), waitPeriod); ctxErr != nil {
			for _, o := range p.observers {
				o.OnCancelled(p.name, attempt, err)
			}
			return zero, fmt.Errorf("%s interrupted after %d attempt(s): %w: %w", p.name, attempt, ctxErr, err)
		}
		for _, o := range p.observers {
			o.OnWaited(p.name, attempt, waitPeriod)
		}
		waitPeriod = grow(waitPeriod, p.growthFactor)
	}
}

func (p Policy) clock() timeu.ITime {
	if p.iTime == nil {
		return timeu.NewITime()
	}
	return p.iTime
}
