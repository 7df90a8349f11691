/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package logger

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

type logPrinter struct {
	logLevel TLogLevel
}

var globalLogPrinter = logPrinter{logLevel: LogLevelInfo}

func isEnabled(level TLogLevel) bool {
	return TLogLevel(atomic.LoadInt32((*int32)(&globalLogPrinter.logLevel))) >= level
}

func printIfLevel(skipStackFrames int, level TLogLevel, args ...interface{}) {
	if !isEnabled(level) {
		return
	}
	globalLogPrinter.print(skipStackFrames+printSkipFrames, level, args...)
}

func (p *logPrinter) print(skipStackFrames int, level TLogLevel, args ...interface{}) {
	funcName, line := p.getFuncName(skipStackFrames)
	PrintLine(level, p.getFormattedMsg(getLevelPrefix(level), funcName, line, args...))
}

// getFuncName returns the short name (last path element) and the line of the
// function skipStackFrames levels up the stack
func (p *logPrinter) getFuncName(skipStackFrames int) (funcName string, line int) {
	pc, _, line, ok := runtime.Caller(skipStackFrames)
	if !ok {
		return "", 0
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
		if idx := strings.LastIndex(funcName, "/"); idx >= 0 {
			funcName = funcName[idx+1:]
		}
	}
	return funcName, line
}

func (p *logPrinter) getFormattedMsg(msgType string, funcName string, line int, args ...interface{}) string {
	msg := strings.TrimSuffix(fmt.Sprintln(args...), "\n")
	return fmt.Sprintf("%s: %s: [%s:%d]: %s", time.Now().Format(msgTimeLayout), msgType, funcName, line, msg)
}

func getFuncName(skipStackFrames int) (funcName string, line int) {
	return globalLogPrinter.getFuncName(skipStackFrames + 1)
}

func getLevelPrefix(level TLogLevel) string {
	switch level {
	case LogLevelError:
		return errorPrefix
	case LogLevelWarning:
		return warningPrefix
	case LogLevelInfo:
		return infoPrefix
	case LogLevelVerbose:
		return verbosePrefix
	case LogLevelTrace:
		return tracePrefix
	}
	return ""
}
