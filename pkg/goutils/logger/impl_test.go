/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MsgFormatter(t *testing.T) {
	var out string

	out = globalLogPrinter.getFormattedMsg("", "backoff.Policy.Execute", 120, "line1")
	assert.True(t, strings.Contains(out, ": [backoff.Policy.Execute:120]: line1"))

	out = globalLogPrinter.getFormattedMsg("", "", 121, "line1", "line2")
	assert.True(t, strings.Contains(out, ": [:121]: line1 line2"))

	out = globalLogPrinter.getFormattedMsg("m1:m2/m3", "fetch.(*Fetcher).Fetch", 126, "attempt", 2, "failed")
	assert.True(t, strings.Contains(out, "m1:m2/m3: [fetch.(*Fetcher).Fetch:126]: attempt 2 failed"))
}

func Test_CheckRightPrefix(t *testing.T) {
	defer SetLogLevelWithRestore(LogLevelInfo)()

	SetLogLevel(LogLevelInfo)
	assert.Equal(t, infoPrefix, getLevelPrefix(globalLogPrinter.logLevel))

	SetLogLevel(LogLevelTrace)
	assert.Equal(t, tracePrefix, getLevelPrefix(globalLogPrinter.logLevel))

	SetLogLevel(LogLevelWarning)
	assert.Equal(t, warningPrefix, getLevelPrefix(globalLogPrinter.logLevel))

	SetLogLevel(LogLevelError)
	assert.Equal(t, errorPrefix, getLevelPrefix(globalLogPrinter.logLevel))

	// unknown level
	SetLogLevel(7)
	require.Empty(t, getLevelPrefix(globalLogPrinter.logLevel))
}

func Test_GetFuncName(t *testing.T) {
	funcName, line := globalLogPrinter.getFuncName(2)
	assert.Equal(t, "testing.tRunner", funcName)
	assert.Greater(t, line, 0)
}

func Test_LevelGating(t *testing.T) {
	require := require.New(t)
	buf := bytes.NewBuffer(nil)
	defer SetWriter(buf)()
	defer SetLogLevelWithRestore(LogLevelInfo)()

	Verbose("hidden")
	Info("shown")
	require.NotContains(buf.String(), "hidden")
	require.Contains(buf.String(), "shown")
	require.Contains(buf.String(), "logger.Test_LevelGating")

	SetLogLevel(LogLevelVerbose)
	require.True(IsVerbose())
	require.False(IsTrace())
	Verbose("now visible")
	require.Contains(buf.String(), verbosePrefix+": [logger.Test_LevelGating")
}

func Test_CtxAttrs(t *testing.T) {
	require := require.New(t)
	buf := bytes.NewBuffer(nil)
	defer SetWriter(buf)()
	defer SetLogLevelWithRestore(LogLevelVerbose)()

	ctx := WithContextAttrs(context.Background(), LogAttr_Op, "download")
	ctx2 := WithContextAttrs(ctx, LogAttr_Attempt, 3)
	VerboseCtx(ctx2, "attempt failed")

	out := buf.String()
	require.Contains(out, "level=VERBOSE")
	require.Contains(out, "op=download")
	require.Contains(out, "attempt=3")
	require.Contains(out, "logger.Test_CtxAttrs")

	// parent context is not affected
	buf.Reset()
	InfoCtx(ctx, "done")
	require.Contains(buf.String(), "op=download")
	require.NotContains(buf.String(), "attempt=")
}
