// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
)

// The wrapper is installed as <prefix>-tcf-<suffix> next to <prefix>-<suffix>.
const tcfNameInfix = "-tcf-"

func compilerNameForWrapper(wrapperPath string) (string, error) {
	basename := filepath.Base(wrapperPath)
	if !strings.Contains(basename, tcfNameInfix) {
		return "", newUserErrorf(binaryNotFound, "cannot derive the compiler name: %q does not contain %q", basename, tcfNameInfix)
	}
	return strings.Replace(basename, tcfNameInfix, "-", 1), nil
}

// resolveCompilerPath prefers a compiler installed in the wrapper's own
// directory. Otherwise the bare name is returned and resolved through PATH
// when the command is started.
func resolveCompilerPath(env env, wrapperPath string) (path string, colocated bool, err error) {
	compilerName, err := compilerNameForWrapper(wrapperPath)
	if err != nil {
		return "", false, err
	}
	wrapperDir, err := getAbsWrapperDir(env)
	if err != nil {
		return "", false, err
	}
	candidate := filepath.Join(wrapperDir, compilerName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, true, nil
	}
	return compilerName, false, nil
}

func getAbsWrapperDir(env env) (string, error) {
	wrapperPath, err := env.executable()
	if err != nil {
		return "", wrapErrorwithSourceLocf(err, "failed to locate the wrapper executable")
	}
	if !filepath.IsAbs(wrapperPath) {
		wrapperPath = filepath.Join(env.getwd(), wrapperPath)
	}
	evaledCmdPath, err := filepath.EvalSymlinks(wrapperPath)
	if err != nil {
		return "", wrapErrorwithSourceLocf(err, "failed to evaluate symlinks for %s", wrapperPath)
	}
	return filepath.Dir(evaledCmdPath), nil
}
