// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

type command struct {
	path string
	args []string
}

func newProcessCommand() *command {
	return &command{
		path: os.Args[0],
		args: os.Args[1:],
	}
}

// The environment is left untouched: the child inherits the wrapper's.
func newExecCmd(env env, cmd *command) *exec.Cmd {
	execCmd := exec.Command(cmd.path, cmd.args...)
	execCmd.Dir = env.getwd()
	return execCmd
}

func (cmd *command) argv() []string {
	return append([]string{cmd.path}, cmd.args...)
}

// commandBuilder assembles the compiler command line. The TCF derived flags
// are spliced in where -tcf= appeared, between the user arguments before and
// after it. When no user argument precedes -tcf=, they follow all user
// arguments instead.
type commandBuilder struct {
	path       string
	preTcfArgs []string
	tcfArgs    []string
	postArgs   []string
}

func newCommandBuilder(compilerPath string, args *tcfArgs) *commandBuilder {
	if len(args.before) == 0 {
		return &commandBuilder{
			path:       compilerPath,
			preTcfArgs: append([]string(nil), args.after...),
		}
	}
	return &commandBuilder{
		path:       compilerPath,
		preTcfArgs: append([]string(nil), args.before...),
		postArgs:   append([]string(nil), args.after...),
	}
}

func (builder *commandBuilder) addTcfArgs(args ...string) {
	builder.tcfArgs = append(builder.tcfArgs, args...)
}

func (builder *commandBuilder) build() *command {
	cmdArgs := make([]string, 0, len(builder.preTcfArgs)+len(builder.tcfArgs)+len(builder.postArgs))
	cmdArgs = append(cmdArgs, builder.preTcfArgs...)
	cmdArgs = append(cmdArgs, builder.tcfArgs...)
	cmdArgs = append(cmdArgs, builder.postArgs...)
	return &command{
		path: builder.path,
		args: cmdArgs,
	}
}

func printCmd(writer io.Writer, cmd *command) {
	fmt.Fprintln(writer, strings.Join(cmd.argv(), " "))
}

func runCompiler(env env, cmd *command) (exitCode int, err error) {
	return wrapSubprocessError(cmd, env.run(cmd, env.stdin(), env.stdout(), env.stderr()))
}

func wrapSubprocessError(cmd *command, subprocessErr error) (exitCode int, err error) {
	if exitCode, ok := getExitCode(subprocessErr); ok {
		return exitCode, nil
	}
	if _, ok := subprocessErr.(*exec.ExitError); ok {
		return 0, wrapErrorwithSourceLocf(subprocessErr, "%s terminated abnormally", cmd.path)
	}
	return 0, newUserErrorf(binaryNotFound, "failed to execute %s: %s", cmd.path, subprocessErr)
}
