/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package cobrau

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/voedger/backoff/pkg/goutils/logger"
)

func TestPrepareRootCmd(t *testing.T) {
	defer logger.SetLogLevelWithRestore(logger.LogLevelInfo)()

	var ran bool
	newSub := func() *cobra.Command {
		return &cobra.Command{
			Use: "sub",
			RunE: func(cmd *cobra.Command, args []string) error {
				ran = true
				return nil
			},
		}
	}

	t.Run("version", func(t *testing.T) {
		require := require.New(t)
		root := PrepareRootCmd("tool", "test tool", []string{"tool", "version"}, "1.0.0", newSub())
		out := bytes.NewBuffer(nil)
		root.SetOut(out)
		require.NoError(root.Execute())
		require.Equal("tool version 1.0.0\n", out.String())
	})

	t.Run("verbose flag on subcommand", func(t *testing.T) {
		require := require.New(t)
		root := PrepareRootCmd("tool", "test tool", []string{"tool", "sub", "-v"}, "1.0.0", newSub())
		require.NoError(root.Execute())
		require.True(ran)
		require.True(logger.IsVerbose())
		require.False(logger.IsTrace())
	})

	t.Run("trace flag", func(t *testing.T) {
		require := require.New(t)
		root := PrepareRootCmd("tool", "test tool", []string{"tool", "--trace", "sub"}, "1.0.0", newSub())
		require.NoError(root.Execute())
		require.True(logger.IsTrace())
	})
}

func TestGoAndCatchInterrupt(t *testing.T) {
	testErr := errors.New("test")
	err := goAndCatchInterrupt(func(ctx context.Context) error {
		require.NoError(t, ctx.Err())
		return testErr
	})
	require.ErrorIs(t, err, testErr)
}
