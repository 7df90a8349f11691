/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package cobrau

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/backoff/pkg/goutils/logger"
)

/*

Persistent flags:

  -v, --verbose   Print verbose output (detailed level)
      --trace     Print trace output   (most detailed level)

*/

// PrepareRootCmd builds the root command with cmds, a version command and the logging flags
// args[0] is the program name
func PrepareRootCmd(use string, short string, args []string, version string, cmds ...*cobra.Command) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   use,
		Short: short,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyLogLevel(cmd)
		},
	}

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the current version",
		Aliases: []string{"ver"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Root().Name(), version)
		},
	}

	rootCmd.SetArgs(args[1:])
	rootCmd.AddCommand(cmds...)
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool("trace", false, "Enable extremely verbose output")
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd
}

func applyLogLevel(cmd *cobra.Command) error {
	trace, err := cmd.Flags().GetBool("trace")
	if err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	switch {
	case trace:
		logger.SetLogLevel(logger.LogLevelTrace)
		logger.Verbose("Using logger.LogLevelTrace...")
	case verbose:
		logger.SetLogLevel(logger.LogLevelVerbose)
		logger.Verbose("Using logger.LogLevelVerbose...")
	}
	return nil
}
