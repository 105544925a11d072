// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// tcf_wrapper runs a GNU cross compiler with the flags described by a
// target-configuration (TCF) file. Install it as <prefix>-tcf-<suffix> next
// to the compiler <prefix>-<suffix>, e.g. riscv64-elf-tcf-gcc, and call it
// as the compiler:
//
//	riscv64-elf-tcf-gcc -tcf=board.tcf -specs=nano.specs main.c -o main.elf
//
// The flags taken from board.tcf are inserted where -tcf= appears. Run with
// -tcf-help for the list of wrapper options.
package main

import (
	"log"
	"os"
)

func main() {
	env, err := newProcessEnv()
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(callCompiler(env, newProcessCommand()))
}
