/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package testingu

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
)

// CmdTestCase describes one invocation of a CLI entry point
// empty pattern in Expected*Patterns means "output must be empty"
type CmdTestCase struct {
	Name                   string
	Args                   []string
	ExpectedErr            error
	ExpectedErrPatterns    []string
	ExpectedStdoutPatterns []string
	ExpectedStderrPatterns []string
}

// RunCmdTestCases runs each case as a subtest with stdout and stderr captured
func RunCmdTestCases(t *testing.T, execute func(args []string, version string) error, testCases []CmdTestCase, version string) {
	t.Helper()
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Helper()
			stdout, stderr, err := CaptureStdoutStderr(func() error {
				return execute(tc.Args, version)
			})
			t.Log("stdout:", stdout)
			t.Log("stderr:", stderr)

			checkOutput(t, tc.ExpectedStdoutPatterns, stdout, "stdout")
			checkOutput(t, tc.ExpectedStderrPatterns, stderr, "stderr")
			checkError(t, tc.ExpectedErr, tc.ExpectedErrPatterns, err)
		})
	}
}

func checkError(t *testing.T, expectedErr error, expectedErrPatterns []string, actualErr error) {
	t.Helper()
	if expectedErr == nil && len(expectedErrPatterns) == 0 {
		if actualErr != nil {
			t.Errorf("unexpected error was returned: %v", actualErr)
		}
		return
	}
	if actualErr == nil {
		t.Errorf("error was not returned as expected")
		return
	}
	if expectedErr != nil && !errors.Is(actualErr, expectedErr) {
		t.Errorf("wrong error was returned: expected `%v`, got `%v`", expectedErr, actualErr)
	}
	for _, pattern := range expectedErrPatterns {
		if !strings.Contains(actualErr.Error(), pattern) {
			t.Errorf("wrong error was returned: expected pattern `%v`, got `%v`", pattern, actualErr.Error())
		}
	}
}

func checkOutput(t *testing.T, expectedPatterns []string, actual, outputTitle string) {
	t.Helper()
	for _, expectedPattern := range expectedPatterns {
		switch {
		case len(expectedPattern) == 0 && len(actual) > 0:
			t.Errorf("%s: expected nothing, got `%v`", outputTitle, actual)
		case len(expectedPattern) > 0 && !strings.Contains(actual, expectedPattern):
			t.Errorf("%s: expected pattern `%v`, actual `%v`", outputTitle, expectedPattern, actual)
		}
	}
}

// CaptureStdoutStderr replaces os.Stdout and os.Stderr with pipes while f runs
func CaptureStdoutStderr(f func() error) (stdout string, stderr string, err error) {
	stdoutReader, stdoutWriter, err := os.Pipe()
	if err != nil {
		return
	}
	stderrReader, stderrWriter, err := os.Pipe()
	if err != nil {
		return
	}

	origStdout, origStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = stdoutWriter, stderrWriter
	defer func() {
		os.Stdout, os.Stderr = origStdout, origStderr
	}()

	wg := sync.WaitGroup{}
	readAll := func(r io.Reader, dst *string) {
		defer wg.Done()
		var b bytes.Buffer
		_, _ = io.Copy(&b, r)
		*dst = b.String()
	}
	wg.Add(2)
	go readAll(stdoutReader, &stdout)
	go readAll(stderrReader, &stderr)

	err = f()
	stderrWriter.Close()
	stdoutWriter.Close()
	wg.Wait()
	return
}
