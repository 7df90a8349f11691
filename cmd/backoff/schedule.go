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
	"io"

	"github.com/spf13/cobra"

	"github.com/voedger/backoff/pkg/backoff"
)

func newScheduleCmd(params *cliParams) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Print the wait periods of the policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := params.newSession(cmd, "schedule")
			if err != nil {
				return err
			}
			defer func() { err = s.close(err) }()
			printSchedule(cmd.OutOrStdout(), s.policy)
			return nil
		},
	}
}

func printSchedule(w io.Writer, p backoff.Policy) {
	fmt.Fprintf(w, "attempts: %d\n", uint64(p.MaxRetries())+1)
	for i, d := range p.Schedule(maxPrintedWaits) {
		fmt.Fprintf(w, "wait %d: %v\n", i+1, d)
	}
	if p.MaxRetries() > maxPrintedWaits {
		fmt.Fprintf(w, "... %d more\n", p.MaxRetries()-maxPrintedWaits)
	}
	fmt.Fprintf(w, "total: %v\n", p.MaxTotalWait())
}
