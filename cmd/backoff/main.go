/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package main

import (
	_ "embed"
	"os"

	"github.com/voedger/backoff/pkg/goutils/cobrau"
	"github.com/voedger/backoff/pkg/goutils/logger"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	params := &cliParams{}
	rootCmd := cobrau.PrepareRootCmd(
		"backoff",
		"Retries commands and downloads with exponential backoff",
		args,
		ver,
		newRunCmd(params),
		newFetchCmd(params),
		newScheduleCmd(params),
	)
	params.bindFlags(rootCmd)
	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
