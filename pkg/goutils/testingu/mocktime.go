/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package testingu

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/voedger/backoff/pkg/goutils/timeu"
)

// MockTime is shared by tests that do not care about isolation
// tests that assert on Sleeps() should use NewMockTime()
var MockTime = NewMockTime()

type IMockTime interface {
	timeu.ITime

	// implementation must trigger each timer created by IMockTime.NewTimerChan() if the time has come after adding
	Add(d time.Duration)

	// next timer got by NewTimerChan already will contain firing
	// useful when we do not know the instant when NewTimerChan() will be called but we advancing the time to make it fire
	FireNextTimerImmediately()

	// durations passed to Sleep() and SleepCtx(), in call order
	Sleeps() []time.Duration

	timeu.ICtxSleeper
}

func NewMockTime() IMockTime {
	return &mockedTime{
		now:    time.Now(),
		timers: map[*mockTimer]struct{}{},
	}
}

type mockedTime struct {
	sync.RWMutex
	now                      time.Time
	timers                   map[*mockTimer]struct{}
	fireNextTimerImmediately bool
	sleeps                   []time.Duration
}

type mockTimer struct {
	c          chan time.Time
	expiration time.Time
}

func (t *mockedTime) Now() time.Time {
	t.RLock()
	defer t.RUnlock()
	return t.now
}

func (t *mockedTime) NewTimerChan(d time.Duration) <-chan time.Time {
	t.Lock()
	defer t.Unlock()
	mt := &mockTimer{
		c:          make(chan time.Time, 1),
		expiration: t.now.Add(d),
	}
	if t.fireNextTimerImmediately || d <= 0 {
		mt.c <- t.now
		t.fireNextTimerImmediately = false
		return mt.c
	}
	t.timers[mt] = struct{}{}
	return mt.c
}

func (t *mockedTime) FireNextTimerImmediately() {
	t.Lock()
	t.fireNextTimerImmediately = true
	t.Unlock()
}

func (t *mockedTime) Add(d time.Duration) {
	t.Lock()
	defer t.Unlock()
	t.add(d)
}

func (t *mockedTime) Sleep(d time.Duration) {
	t.Lock()
	defer t.Unlock()
	t.sleeps = append(t.sleeps, d)
	t.add(d)
}

// SleepCtx makes the mocked clock usable under a cancellable ctx
// ctx done -> ctx.Err(), nothing recorded. Otherwise the same as Sleep()
func (t *mockedTime) SleepCtx(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.Sleep(d)
	return nil
}

func (t *mockedTime) Sleeps() []time.Duration {
	t.RLock()
	defer t.RUnlock()
	return slices.Clone(t.sleeps)
}

func (t *mockedTime) add(d time.Duration) {
	t.now = t.now.Add(d)
	for timer := range t.timers {
		if !t.now.Before(timer.expiration) {
			timer.c <- t.now
			delete(t.timers, timer)
		}
	}
}
