/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package cobrau

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/voedger/backoff/pkg/goutils/logger"
)

// ExecCommandAndCatchInterrupt executes cmd with a context that is cancelled on SIGINT or SIGTERM
func ExecCommandAndCatchInterrupt(cmd *cobra.Command) error {
	return goAndCatchInterrupt(func(ctx context.Context) error {
		return cmd.ExecuteContext(ctx)
	})
}

func goAndCatchInterrupt(f func(ctx context.Context) error) (err error) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		err = f(ctx)
		cancel()
	}()

	select {
	case sig := <-signals:
		logger.Info("signal received:", sig)
		cancel()
	case <-ctx.Done():
	}
	logger.Verbose("waiting for function to finish...")
	wg.Wait()
	return err
}
