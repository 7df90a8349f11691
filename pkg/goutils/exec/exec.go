/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 * @author Denis Gribanov
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

package exec

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/voedger/backoff/pkg/goutils/logger"
)

// PipedExec executes commands connected in a pipe: cmd1 | cmd2 | ...
// A PipedExec runs once, build a new one for every attempt
type PipedExec struct {
	ctx  context.Context
	cmds []*pipedCmd
}

// stderr of every command goes to the err writer passed to Start()
type pipedCmd struct {
	cmd *exec.Cmd
}

// WithContext makes the commands added after the call killed when ctx is done
func (pe *PipedExec) WithContext(ctx context.Context) *PipedExec {
	pe.ctx = ctx
	return pe
}

// Command adds a command to a pipe
func (pe *PipedExec) Command(name string, args ...string) *PipedExec {
	var cmd *exec.Cmd
	if pe.ctx != nil {
		cmd = exec.CommandContext(pe.ctx, name, args...)
	} else {
		cmd = exec.Command(name, args...)
	}
	lastIdx := len(pe.cmds) - 1
	if lastIdx > -1 {
		var err error
		cmd.Stdin, err = pe.cmds[lastIdx].cmd.StdoutPipe()
		// notest
		if err != nil {
			panic(err)
		}
	} else {
		cmd.Stdin = os.Stdin
	}
	pe.cmds = append(pe.cmds, &pipedCmd{cmd: cmd})
	return pe
}

// GetCmd returns cmd with given index
func (pe *PipedExec) GetCmd(idx int) *exec.Cmd {
	return pe.cmds[idx].cmd
}

// WorkingDir sets working directory for the last command
func (pe *PipedExec) WorkingDir(wd string) *PipedExec {
	pe.cmds[len(pe.cmds)-1].cmd.Dir = wd
	return pe
}

// Env appends "key=value" pairs to the environment of the last command
func (pe *PipedExec) Env(env ...string) *PipedExec {
	cmd := pe.cmds[len(pe.cmds)-1].cmd
	if cmd.Env == nil {
		cmd.Env = os.Environ()
	}
	cmd.Env = append(cmd.Env, env...)
	return pe
}

// Wait until all cmds finish, returns the first error
func (pe *PipedExec) Wait() error {
	var firstErr error
	for _, cmd := range pe.cmds {
		if err := cmd.cmd.Wait(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Start all cmds
func (pe *PipedExec) Start(out io.Writer, err io.Writer) error {
	lastIdx := len(pe.cmds) - 1
	if lastIdx < 0 {
		return errors.New("empty command list")
	}
	if err != nil {
		for _, cmd := range pe.cmds {
			cmd.cmd.Stderr = err
		}
	}
	if out != nil {
		pe.cmds[lastIdx].cmd.Stdout = out
	}

	for _, cmd := range pe.cmds {
		logger.Verbose(cmd.cmd.Path, cmd.cmd.Args)
		if err := cmd.cmd.Start(); err != nil {
			return err
		}
	}
	return nil
}

// Run starts the pipe and waits for it
func (pe *PipedExec) Run(out io.Writer, err io.Writer) error {
	if e := pe.Start(out, err); e != nil {
		return e
	}
	return pe.Wait()
}

// RunToStrings runs the pipe and collects stdout of the last command and stderr of all commands
func (pe *PipedExec) RunToStrings() (stdout string, stderr string, err error) {
	var stdoutBuf, stderrBuf bytes.Buffer
	var mu sync.Mutex
	err = pe.Run(&lockedWriter{mu: &mu, w: &stdoutBuf}, &lockedWriter{mu: &mu, w: &stderrBuf})
	return stdoutBuf.String(), stderrBuf.String(), err
}

type lockedWriter struct {
	mu *sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	return lw.w.Write(p)
}
