/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package backoffmetrics

import "github.com/prometheus/client_golang/prometheus"

// New creates metrics named <namespace>_backoff_*
func New(namespace string) *Collector {
	return &Collector{
		attemptsFailed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "attempts_failed_total",
			Help:      "Total number of failed attempts",
		}, []string{labelOperation}),
		executions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "executions_total",
			Help:      "Total number of finished executions by result",
		}, []string{labelOperation, labelResult}),
		attempts: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "attempts_per_execution",
			Help:      "Attempts made by a finished execution",
			Buckets:   attemptsBuckets,
		}, []string{labelOperation}),
		waitSeconds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "wait_seconds_total",
			Help:      "Total time waited between attempts",
		}, []string{labelOperation}),
	}
}
