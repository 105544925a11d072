// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

type errorKind int

const (
	configNotFound errorKind = iota
	invalidConfig
	missingSection
	missingRequiredFlag
	malformedKeyValueToken
	binaryNotFound
)

func (kind errorKind) String() string {
	switch kind {
	case configNotFound:
		return "ConfigNotFound"
	case invalidConfig:
		return "InvalidConfig"
	case missingSection:
		return "MissingSection"
	case missingRequiredFlag:
		return "MissingRequiredFlag"
	case malformedKeyValueToken:
		return "MalformedKeyValueToken"
	case binaryNotFound:
		return "BinaryNotFound"
	default:
		return fmt.Sprintf("errorKind(%d)", int(kind))
	}
}

// userError is an error caused by the invocation or the TCF file rather than
// by a bug in the wrapper. Its message is printed as is.
type userError struct {
	kind errorKind
	err  string
}

var _ error = userError{}

func (err userError) Error() string {
	return err.err
}

func newUserErrorf(kind errorKind, format string, v ...interface{}) userError {
	return userError{kind: kind, err: fmt.Sprintf(format, v...)}
}

func isUserErrorKind(err error, kind errorKind) bool {
	var userErr userError
	return errors.As(err, &userErr) && userErr.kind == kind
}

func newErrorwithSourceLocf(format string, v ...interface{}) error {
	return newErrorwithSourceLocfInternal(2, format, v...)
}

func wrapErrorwithSourceLocf(err error, format string, v ...interface{}) error {
	return newErrorwithSourceLocfInternal(2, "%s: %s", fmt.Sprintf(format, v...), err.Error())
}

// Based on the implementation of log.Output
func newErrorwithSourceLocfInternal(skip int, format string, v ...interface{}) error {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file = "???"
		line = 0
	}
	if lastSlash := strings.LastIndex(file, "/"); lastSlash >= 0 {
		file = file[lastSlash+1:]
	}

	return fmt.Errorf("%s:%d: %s", file, line, fmt.Sprintf(format, v...))
}

// wrapperFailureExitCode is the exit code for every error of the wrapper
// itself. The compiler's own exit code is forwarded as is.
const wrapperFailureExitCode = 1

func getExitCode(err error) (exitCode int, ok bool) {
	if err == nil {
		return 0, true
	}
	var exitErr interface{ ExitCode() int }
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, true
		}
	}
	return 0, false
}
