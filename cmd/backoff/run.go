/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package main

import (
	"github.com/spf13/cobra"

	"github.com/voedger/backoff/pkg/goutils/exec"
)

func newRunCmd(params *cliParams) *cobra.Command {
	var workingDir string
	cmd := &cobra.Command{
		Use:   "run [flags] -- command [args...]",
		Short: "Run a command until it exits with code 0",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if len(args) == 0 {
				return ErrMissingCommand
			}
			s, err := params.newSession(cmd, args[0])
			if err != nil {
				return err
			}
			defer func() { err = s.close(err) }()

			return s.policy.Execute(cmd.Context(), func() error {
				pe := new(exec.PipedExec).WithContext(cmd.Context()).Command(args[0], args[1:]...)
				if len(workingDir) > 0 {
					pe.WorkingDir(workingDir)
				}
				return pe.Run(cmd.OutOrStdout(), cmd.ErrOrStderr())
			})
		},
	}
	cmd.Flags().StringVar(&workingDir, "dir", "", "Working directory of the command")
	return cmd
}
