// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"fmt"
	"io"
)

func callCompiler(env env, inputCmd *command) int {
	args := partitionTcfArgs(inputCmd.args)
	if args.help {
		if err := printUsage(env, inputCmd); err != nil {
			printCompilerError(env.stderr(), err)
			return wrapperFailureExitCode
		}
		return 0
	}
	exitCode, err := callCompilerInternal(env, inputCmd.path, args)
	if err != nil {
		printCompilerError(env.stderr(), err)
		return wrapperFailureExitCode
	}
	return exitCode
}

func callCompilerInternal(env env, wrapperPath string, args *tcfArgs) (exitCode int, err error) {
	logger := newDebugLogger(env.stderr(), args.debug)
	logger.Printf("args before -tcf=: %q", args.before)
	logger.Printf("args after -tcf=: %q", args.after)

	var cfg *tcfConfig
	if args.hasTcf {
		logger.Printf("reading TCF file %s", args.tcfPath)
		if cfg, err = loadTcfConfig(env, args.tcfPath); err != nil {
			return 0, err
		}
		logger.Printf("march=%s mtune=%s mabi=%s mcmodel=%s", cfg.march, cfg.mtune, cfg.mabi, cfg.mcmodel)
	} else {
		logger.Printf("no -tcf= given, passing arguments through")
	}

	compilerPath, colocated, err := resolveCompilerPath(env, wrapperPath)
	if err != nil {
		return 0, err
	}
	if colocated {
		logger.Printf("using compiler next to the wrapper: %s", compilerPath)
	} else {
		logger.Printf("using compiler from PATH: %s", compilerPath)
	}

	builder := newCommandBuilder(compilerPath, args)
	if cfg != nil {
		builder.addTcfArgs(cfg.compileOptions...)
		builder.addTcfArgs(cfg.linkOptions...)
	}
	compilerCmd := builder.build()
	printCmd(env.stdout(), compilerCmd)
	return runCompiler(env, compilerCmd)
}

func printCompilerError(writer io.Writer, compilerErr error) {
	if _, ok := compilerErr.(userError); ok {
		fmt.Fprintf(writer, "%s\n", compilerErr)
	} else {
		fmt.Fprintf(writer,
			"Internal error in the TCF compiler wrapper.\n%s\n",
			compilerErr)
	}
}
