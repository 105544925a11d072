// Copyright 2026 The ChromiumOS Authors
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	gccCompilerSection = "gcc_compiler"
	nsimSection        = "nSIM"
)

type tcfConfig struct {
	march   string
	mtune   string
	mabi    string
	mcmodel string
	// Flags for the compile step, in the order of the gcc_compiler section.
	compileOptions []string
	// -Wl,-defsym flags describing the memory layout from the nSIM section.
	linkOptions []string
}

// Each memory layout key is exported under the symbol names of both runtime
// conventions, the linker script one first.
var tcfMemorySymbols = []struct {
	key     string
	symbols []string
}{
	{"iccm0_base", []string{"txtmem_addr", "__flash"}},
	{"iccm0_size", []string{"txtmem_len", "__flash_size"}},
	{"dccm_base", []string{"datamem_addr", "__ram"}},
	{"dccm_size", []string{"datamem_len", "__ram_size"}},
}

// loadTcfConfig reads the TCF file at path, relative to the working
// directory of env.
func loadTcfConfig(env env, path string) (*tcfConfig, error) {
	fullPath := path
	if !filepath.IsAbs(fullPath) {
		fullPath = filepath.Join(env.getwd(), fullPath)
	}
	file, err := os.Open(fullPath)
	if err != nil {
		return nil, newUserErrorf(configNotFound, "cannot open TCF file %q: %s", path, err)
	}
	defer file.Close()

	sections, err := readTcfSections(file, gccCompilerSection, nsimSection)
	if err != nil {
		return nil, newUserErrorf(invalidConfig, "cannot parse TCF file %q: %s", path, err)
	}
	for _, name := range []string{gccCompilerSection, nsimSection} {
		if _, ok := sections[name]; !ok {
			return nil, newUserErrorf(missingSection, "TCF file %q has no %q section", path, name)
		}
	}
	return newTcfConfig(path, sections[gccCompilerSection], sections[nsimSection])
}

func newTcfConfig(path string, gccCompilerText string, nsimText string) (*tcfConfig, error) {
	cfg := &tcfConfig{
		compileOptions: strings.Fields(gccCompilerText),
	}
	for _, opt := range cfg.compileOptions {
		switch {
		case strings.HasPrefix(opt, "-march="):
			cfg.march = opt[len("-march="):]
		case strings.HasPrefix(opt, "-mtune="):
			cfg.mtune = opt[len("-mtune="):]
		case strings.HasPrefix(opt, "-mabi="):
			cfg.mabi = opt[len("-mabi="):]
		}
	}
	for _, required := range []struct {
		flag  string
		value string
	}{
		{"-march=", cfg.march},
		{"-mtune=", cfg.mtune},
		{"-mabi=", cfg.mabi},
	} {
		if required.value == "" {
			return nil, newUserErrorf(missingRequiredFlag, "TCF file %q: %q section does not set %s", path, gccCompilerSection, required.flag)
		}
	}
	if strings.Contains(cfg.march, "rv64") {
		cfg.mcmodel = "medany"
	} else {
		cfg.mcmodel = "medlow"
	}

	props, err := parseNsimProps(nsimText)
	if err != nil {
		return nil, newUserErrorf(malformedKeyValueToken, "TCF file %q: %s", path, err)
	}
	for _, mem := range tcfMemorySymbols {
		value, ok := props[mem.key]
		if !ok {
			continue
		}
		for _, symbol := range mem.symbols {
			cfg.linkOptions = append(cfg.linkOptions, fmt.Sprintf("-Wl,-defsym=%s=%s", symbol, value))
		}
	}
	return cfg, nil
}

func parseNsimProps(text string) (map[string]string, error) {
	props := map[string]string{}
	for _, token := range strings.Fields(text) {
		sep := strings.IndexByte(token, '=')
		if sep <= 0 {
			return nil, fmt.Errorf("%q section entry %q is not of the form key=value", nsimSection, token)
		}
		props[token[:sep]] = token[sep+1:]
	}
	return props, nil
}

// tcfSection is any element carrying a name attribute. The option string is
// either its own character data or that of its <string> children.
type tcfSection struct {
	Text    string   `xml:",chardata"`
	Strings []string `xml:"string"`
}

// readTcfSections returns the text of the first element named by each of
// names. Names that do not occur are absent from the result.
func readTcfSections(r io.Reader, names ...string) (map[string]string, error) {
	wanted := map[string]bool{}
	for _, name := range names {
		wanted[name] = true
	}
	sections := map[string]string{}
	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			return sections, nil
		}
		if err != nil {
			return nil, err
		}
		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		name := sectionName(start)
		if !wanted[name] {
			continue
		}
		if _, seen := sections[name]; seen {
			continue
		}
		var section tcfSection
		if err := decoder.DecodeElement(&section, &start); err != nil {
			return nil, err
		}
		sections[name] = section.Text + " " + strings.Join(section.Strings, " ")
	}
}

func sectionName(start xml.StartElement) string {
	for _, attr := range start.Attr {
		if attr.Name.Local == "name" {
			return attr.Value
		}
	}
	return ""
}
