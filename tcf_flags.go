// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import "strings"

const (
	tcfFlagPrefix = "-tcf="
	tcfDebugFlag  = "-tcf-debug"
	tcfHelpFlag   = "-tcf-help"
)

type tcfArgs struct {
	// User args seen before -tcf=.
	before []string
	// User args seen after -tcf=.
	after   []string
	tcfPath string
	hasTcf  bool
	debug   bool
	help    bool
}

// partitionTcfArgs splits the wrapper arguments around the first -tcf= token
// and consumes the wrapper's own control flags. Only the first -tcf= names
// the configuration; later ones are passed through to the compiler.
func partitionTcfArgs(args []string) *tcfArgs {
	result := &tcfArgs{}
	for _, arg := range args {
		switch {
		case arg == tcfDebugFlag:
			result.debug = true
		case arg == tcfHelpFlag:
			result.help = true
		case !result.hasTcf && strings.HasPrefix(arg, tcfFlagPrefix):
			result.tcfPath = arg[len(tcfFlagPrefix):]
			result.hasTcf = true
		case result.hasTcf:
			result.after = append(result.after, arg)
		default:
			result.before = append(result.before, arg)
		}
	}
	return result
}
