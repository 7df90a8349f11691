/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package backoffmetrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func (c *Collector) OnAttemptFailed(name string, _ int, _ time.Duration, _ error) {
	c.attemptsFailed.WithLabelValues(name).Inc()
}

func (c *Collector) OnWaited(name string, _ int, wait time.Duration) {
	c.waitSeconds.WithLabelValues(name).Add(wait.Seconds())
}

func (c *Collector) OnSucceeded(name string, attempts int) {
	c.executions.WithLabelValues(name, resultSucceeded).Inc()
	c.attempts.WithLabelValues(name).Observe(float64(attempts))
}

func (c *Collector) OnExhausted(name string, attempts int, _ error) {
	c.executions.WithLabelValues(name, resultExhausted).Inc()
	c.attempts.WithLabelValues(name).Observe(float64(attempts))
}

func (c *Collector) OnCancelled(name string, attempts int, _ error) {
	c.executions.WithLabelValues(name, resultCancelled).Inc()
	c.attempts.WithLabelValues(name).Observe(float64(attempts))
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.attemptsFailed.Describe(ch)
	c.executions.Describe(ch)
	c.attempts.Describe(ch)
	c.waitSeconds.Describe(ch)
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.attemptsFailed.Collect(ch)
	c.executions.Collect(ch)
	c.attempts.Collect(ch)
	c.waitSeconds.Collect(ch)
}

// WriteTextfile writes the metrics of c in the text exposition format
// the file is replaced atomically
func (c *Collector) WriteTextfile(path string) error {
	reg := prometheus.NewRegistry()
	if err := reg.Register(c); err != nil {
		return fmt.Errorf("failed to register backoff metrics: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
