/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/voedger/backoff/pkg/backoff"
	"github.com/voedger/backoff/pkg/backoffcfg"
	"github.com/voedger/backoff/pkg/backoffmetrics"
	"github.com/voedger/backoff/pkg/goutils/logger"
)

type cliParams struct {
	configFile   string
	maxRetries   int
	initialWait  time.Duration
	growthFactor float64
	name         string
	logFile      string
	metricsFile  string
}

func (p *cliParams) bindFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&p.configFile, flagConfig, "", "Path to YAML policy file")
	flags.IntVar(&p.maxRetries, flagMaxRetries, backoff.DefaultMaxRetries, "Retries after the first attempt")
	flags.DurationVar(&p.initialWait, flagInitialWait, backoff.DefaultInitialWaitPeriod, "Wait before the second attempt")
	flags.Float64Var(&p.growthFactor, flagGrowthFactor, backoff.DefaultGrowthFactor, "Wait period multiplier applied after each retry")
	flags.StringVar(&p.name, flagName, "", "Operation name used in logs and metrics")
	flags.StringVar(&p.logFile, flagLogFile, "", "Write log to the file instead of stdout/stderr, the file is rotated")
	flags.StringVar(&p.metricsFile, flagMetricsFile, "", "Write prometheus metrics to the file on exit")
}

// session is what a command needs to run under the policy built from flags and config
type session struct {
	policy  backoff.Policy
	cleanup []func() error
}

// newSession builds the policy: defaults <- config file <- flags set explicitly
func (p *cliParams) newSession(cmd *cobra.Command, defaultName string) (*session, error) {
	s := &session{}
	opts := []backoff.Option{backoff.WithName(defaultName)}
	if len(p.configFile) > 0 {
		cfg, err := backoffcfg.Load(p.configFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cfg.Options()...)
	}

	flags := cmd.Flags()
	if flags.Changed(flagMaxRetries) {
		opts = append(opts, backoff.WithMaxRetries(p.maxRetries))
	}
	if flags.Changed(flagInitialWait) {
		opts = append(opts, backoff.WithInitialWaitPeriod(p.initialWait))
	}
	if flags.Changed(flagGrowthFactor) {
		opts = append(opts, backoff.WithGrowthFactor(p.growthFactor))
	}
	if flags.Changed(flagName) {
		opts = append(opts, backoff.WithName(p.name))
	}

	if len(p.metricsFile) > 0 {
		collector := backoffmetrics.New(metricsNamespace)
		opts = append(opts, backoff.WithObserver(collector))
		s.cleanup = append(s.cleanup, func() error {
			return collector.WriteTextfile(p.metricsFile)
		})
	}

	policy, err := backoff.New(opts...)
	if err != nil {
		return nil, err
	}
	s.policy = policy

	if len(p.logFile) > 0 {
		lj := &lumberjack.Logger{
			Filename:   p.logFile,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
		}
		restore := logger.SetWriter(lj)
		s.cleanup = append(s.cleanup, func() error {
			restore()
			return lj.Close()
		})
	}
	return s, nil
}

// close runs the cleanups, err of the command has the priority
func (s *session) close(err error) error {
	for _, f := range s.cleanup {
		if cleanupErr := f(); cleanupErr != nil && err == nil {
			err = fmt.Errorf("cleanup failed: %w", cleanupErr)
		}
	}
	return err
}
