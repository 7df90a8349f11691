/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package backoffmetrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/voedger/backoff/pkg/backoff"
	"github.com/voedger/backoff/pkg/goutils/testingu"
)

func TestCollector(t *testing.T) {
	require := require.New(t)
	c := New("test")
	reg := prometheus.NewRegistry()
	require.NoError(reg.Register(c))

	p := backoff.MustNew(
		backoff.WithName("fetch"),
		backoff.WithMaxRetries(2),
		backoff.WithInitialWaitPeriod(time.Second),
		backoff.WithTime(testingu.NewMockTime()),
		backoff.WithObserver(c),
	)
	errTest := errors.New("test error")

	// 2 failures, then success
	calls := 0
	require.NoError(p.Execute(context.Background(), func() error {
		calls++
		if calls < 3 {
			return errTest
		}
		return nil
	}))

	// exhausted: 3 failures
	require.Error(p.Execute(context.Background(), func() error { return errTest }))

	require.Equal(5.0, testutil.ToFloat64(c.attemptsFailed.WithLabelValues("fetch")))
	require.Equal(1.0, testutil.ToFloat64(c.executions.WithLabelValues("fetch", resultSucceeded)))
	require.Equal(1.0, testutil.ToFloat64(c.executions.WithLabelValues("fetch", resultExhausted)))
	// 1s+2s twice, the final failed attempt of the exhausted execution does not wait
	require.Equal(6.0, testutil.ToFloat64(c.waitSeconds.WithLabelValues("fetch")))
	require.Equal(5, testutil.CollectAndCount(c))

	families, err := reg.Gather()
	require.NoError(err)
	names := []string{}
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.ElementsMatch([]string{
		"test_backoff_attempts_failed_total",
		"test_backoff_executions_total",
		"test_backoff_attempts_per_execution",
		"test_backoff_wait_seconds_total",
	}, names)
}

func TestCollectorCancelled(t *testing.T) {
	require := require.New(t)
	c := New("test")
	p := backoff.MustNew(
		backoff.WithName("fetch"),
		backoff.WithMaxRetries(5),
		backoff.WithInitialWaitPeriod(time.Second),
		backoff.WithTime(testingu.NewMockTime()),
		backoff.WithObserver(c),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := 0
	err := p.Execute(ctx, func() error {
		calls++
		if calls == 2 {
			cancel()
		}
		return errors.New("test error")
	})
	require.ErrorIs(err, context.Canceled)

	require.Equal(2.0, testutil.ToFloat64(c.attemptsFailed.WithLabelValues("fetch")))
	require.Equal(1.0, testutil.ToFloat64(c.executions.WithLabelValues("fetch", resultCancelled)))
	require.Equal(0.0, testutil.ToFloat64(c.executions.WithLabelValues("fetch", resultExhausted)))
	// only the completed 1s wait, the interrupted 2s one is not counted
	require.Equal(1.0, testutil.ToFloat64(c.waitSeconds.WithLabelValues("fetch")))
	require.Equal(1, testutil.CollectAndCount(c.attempts))
}

func TestWriteTextfile(t *testing.T) {
	require := require.New(t)
	c := New("cli")
	c.OnAttemptFailed("run", 1, time.Second, errors.New("exit status 1"))
	c.OnWaited("run", 1, time.Second)
	c.OnSucceeded("run", 2)

	path := filepath.Join(t.TempDir(), "metrics.prom")
	require.NoError(c.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(err)
	require.Contains(string(content), `cli_backoff_attempts_failed_total{operation="run"} 1`)
	require.Contains(string(content), `cli_backoff_executions_total{operation="run",result="succeeded"} 1`)
	require.Contains(string(content), `cli_backoff_attempts_per_execution_count{operation="run"} 1`)
	require.Contains(string(content), `cli_backoff_wait_seconds_total{operation="run"} 1`)
}
