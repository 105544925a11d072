// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

const mainC = "main.c"
const tcfWrapperRiscv64 = "./riscv64-elf-tcf-gcc"
const gccRiscv64 = "riscv64-elf-gcc"

type testContext struct {
	t            *testing.T
	tempDir      string
	wrapperPath  string
	stdinBuffer  bytes.Buffer
	stdoutBuffer bytes.Buffer
	stderrBuffer bytes.Buffer
	cmdCount     int
	lastCmd      *command
	cmdMock      func(cmd *command, stdin io.Reader, stdout io.Writer, stderr io.Writer) error
}

func withTestContext(t *testing.T, work func(ctx *testContext)) {
	t.Parallel()
	tempDir, err := ioutil.TempDir("", "tcf_wrapper")
	if err != nil {
		t.Fatalf("Unable to create the temp dir. Error: %s", err)
	}
	defer os.RemoveAll(tempDir)
	// The wrapper directory is compared against resolved paths.
	if tempDir, err = filepath.EvalSymlinks(tempDir); err != nil {
		t.Fatal(err)
	}

	ctx := testContext{
		t:       t,
		tempDir: tempDir,
	}
	work(&ctx)
}

var _ env = (*testContext)(nil)

func (ctx *testContext) getwd() string {
	return ctx.tempDir
}

func (ctx *testContext) executable() (string, error) {
	if ctx.wrapperPath == "" {
		return "", fmt.Errorf("no wrapper created")
	}
	return ctx.wrapperPath, nil
}

func (ctx *testContext) stdin() io.Reader {
	return &ctx.stdinBuffer
}

func (ctx *testContext) stdout() io.Writer {
	return &ctx.stdoutBuffer
}

func (ctx *testContext) stderr() io.Writer {
	return &ctx.stderrBuffer
}

func (ctx *testContext) run(cmd *command, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	ctx.cmdCount++
	ctx.lastCmd = cmd
	if ctx.cmdMock != nil {
		return ctx.cmdMock(cmd, stdin, stdout, stderr)
	}
	return nil
}

func (ctx *testContext) must(exitCode int) *command {
	if exitCode != 0 {
		ctx.t.Fatalf("expected no error, but got exit code %d. Stderr: %s",
			exitCode, ctx.stderrBuffer.String())
	}
	if ctx.lastCmd == nil {
		ctx.t.Fatalf("expected a compiler call")
	}
	return ctx.lastCmd
}

func (ctx *testContext) newCommand(path string, args ...string) *command {
	// The wrapper has to exist as its directory is found by resolving
	// symlinks.
	ctx.writeFile(path, "")
	ctx.wrapperPath = filepath.Join(ctx.tempDir, path)
	return &command{
		path: path,
		args: args,
	}
}

func (ctx *testContext) writeFile(fullFileName string, fileContent string) {
	if !filepath.IsAbs(fullFileName) {
		fullFileName = filepath.Join(ctx.tempDir, fullFileName)
	}
	if err := os.MkdirAll(filepath.Dir(fullFileName), 0777); err != nil {
		ctx.t.Fatal(err)
	}
	if err := ioutil.WriteFile(fullFileName, []byte(fileContent), 0777); err != nil {
		ctx.t.Fatal(err)
	}
}

func (ctx *testContext) symlink(oldname string, newname string) {
	if err := os.MkdirAll(filepath.Dir(newname), 0777); err != nil {
		ctx.t.Fatal(err)
	}
	if err := os.Symlink(oldname, newname); err != nil {
		ctx.t.Fatal(err)
	}
}

// writeTcf writes a TCF file with the given section contents. An empty
// content omits the section.
func (ctx *testContext) writeTcf(fileName string, gccCompiler string, nsim string) string {
	content := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<config_list>\n"
	if gccCompiler != "" {
		content += fmt.Sprintf("  <configuration name=\"gcc_compiler\" filename=\"gcc.arg\">\n    <string><![CDATA[%s]]></string>\n  </configuration>\n", gccCompiler)
	}
	if nsim != "" {
		content += fmt.Sprintf("  <configuration name=\"nSIM\" filename=\"nsim.props\">\n    <string><![CDATA[%s]]></string>\n  </configuration>\n", nsim)
	}
	content += "</config_list>\n"
	ctx.writeFile(fileName, content)
	return fileName
}

func verifyPath(cmd *command, expectedRegex string) error {
	compiledRegex := regexp.MustCompile(matchFullString(expectedRegex))
	if !compiledRegex.MatchString(cmd.path) {
		return fmt.Errorf("path does not match %s. Actual %s", expectedRegex, cmd.path)
	}
	return nil
}

func verifyArgCount(cmd *command, expectedCount int, expectedRegex string) error {
	compiledRegex := regexp.MustCompile(matchFullString(expectedRegex))
	count := 0
	for _, arg := range cmd.args {
		if compiledRegex.MatchString(arg) {
			count++
		}
	}
	if count != expectedCount {
		return fmt.Errorf("expected %d matches for arg %s. All args: %s",
			expectedCount, expectedRegex, cmd.args)
	}
	return nil
}

func verifyArgOrder(cmd *command, expectedRegexes ...string) error {
	compiledRegexes := []*regexp.Regexp{}
	for _, regex := range expectedRegexes {
		compiledRegexes = append(compiledRegexes, regexp.MustCompile(matchFullString(regex)))
	}
	expectedArgIndex := 0
	for _, arg := range cmd.args {
		if expectedArgIndex == len(compiledRegexes) {
			break
		} else if compiledRegexes[expectedArgIndex].MatchString(arg) {
			expectedArgIndex++
		}
	}
	if expectedArgIndex != len(expectedRegexes) {
		return fmt.Errorf("expected args %s in order. All args: %s",
			expectedRegexes, cmd.args)
	}
	return nil
}

func matchFullString(regex string) string {
	return "^" + regex + "$"
}

type testExitError int

func (err testExitError) Error() string {
	return fmt.Sprintf("exit status %d", int(err))
}

func (err testExitError) ExitCode() int {
	return int(err)
}
