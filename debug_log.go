// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"io"
	"io/ioutil"
	"log"
)

const debugLogPrefix = "tcf_wrapper: "

// newDebugLogger returns the logger for -tcf-debug output. When debugging is
// off all output is dropped.
func newDebugLogger(writer io.Writer, enabled bool) *log.Logger {
	if !enabled {
		writer = ioutil.Discard
	}
	return log.New(writer, debugLogPrefix, 0)
}
