/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package backoffmetrics

import "github.com/prometheus/client_golang/prometheus"

// Collector records backoff executions as prometheus metrics
// Use it both as backoff.IObserver and as prometheus.Collector
type Collector struct {
	attemptsFailed *prometheus.CounterVec
	executions     *prometheus.CounterVec
	attempts       *prometheus.HistogramVec
	waitSeconds    *prometheus.CounterVec
}
