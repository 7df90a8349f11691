/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package timeu

import (
	"context"
	"time"
)

// ITime is the clock every wait in the module goes through
type ITime interface {
	Now() time.Time
	NewTimerChan(d time.Duration) <-chan time.Time
	Sleep(d time.Duration)
}

func NewITime() ITime {
	return &realTime{}
}

type realTime struct{}

func (t *realTime) Now() time.Time {
	return time.Now()
}

func (t *realTime) NewTimerChan(d time.Duration) <-chan time.Time {
	res := time.NewTimer(d)
	return res.C
}

func (t *realTime) Sleep(d time.Duration) {
	time.Sleep(d)
}

// ICtxSleeper is implemented by clocks that handle ctx-aware sleeps themselves
// e.g. mocked clocks whose timers fire only when the time is advanced explicitly
type ICtxSleeper interface {
	SleepCtx(ctx context.Context, d time.Duration) error
}

// SleepCtx blocks for d on iTime or until ctx is done, whichever comes first
// ctx that can never be done -> plain iTime.Sleep(), so mocked clocks advance without timers
func SleepCtx(ctx context.Context, iTime ITime, d time.Duration) error {
	if s, ok := iTime.(ICtxSleeper); ok {
		return s.SleepCtx(ctx, d)
	}
	if ctx.Done() == nil {
		iTime.Sleep(d)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-iTime.NewTimerChan(d):
		return nil
	}
}
