// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

const usageText = `Runs the cross compiler with the flags described by a TCF file.

The compiler is named after the wrapper with "-tcf" removed, e.g.
riscv64-elf-tcf-gcc runs riscv64-elf-gcc. It is taken from the wrapper's
directory if present there, otherwise from PATH.

Wrapper options:
  -tcf=<file>   Read the gcc_compiler and nSIM sections of <file>. The derived
                compile and -Wl,-defsym flags are inserted where this option
                appears.
  -tcf-debug    Print diagnostic output to stderr.
  -tcf-help     Print this help and exit.

All other arguments are passed to the compiler unchanged.`

// newHelpCommand describes the wrapper for -tcf-help. The command is only
// used to render the usage text and never executed: all arguments belong to
// the compiler, and cobra's command lookup would claim some of them (e.g.
// __complete).
func newHelpCommand(env env, inputCmd *command) *cobra.Command {
	helpCmd := &cobra.Command{
		Use:                   filepath.Base(inputCmd.path) + " [compiler args] -tcf=<file> [compiler args]",
		Short:                 "Cross compiler wrapper driven by a TCF file",
		Long:                  usageText,
		DisableFlagParsing:    true,
		DisableFlagsInUseLine: true,
	}
	helpCmd.SetHelpTemplate("Usage: {{.UseLine}}\n\n{{.Long}}\n")
	helpCmd.SetOut(env.stdout())
	helpCmd.SetErr(env.stderr())
	return helpCmd
}

func printUsage(env env, inputCmd *command) error {
	return newHelpCommand(env, inputCmd).Help()
}
