// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/blinklabs-io/cborcheck/cbor"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type pathList []string

func (p *pathList) String() string {
	return strings.Join(*p, ",")
}

func (p *pathList) Set(value string) error {
	*p = append(*p, value)
	return nil
}

type globalFlags struct {
	flagset  *flag.FlagSet
	file     string
	plan     string
	reads    pathList
	dump     bool
	json     bool
	color    string
	debug    bool
	dupKeys  bool
	maxDepth int
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet("cbor-unread", flag.ContinueOnError),
	}
	f.flagset.StringVar(
		&f.file,
		"file",
		"",
		"read hex CBOR from file instead of the command line",
	)
	f.flagset.StringVar(
		&f.plan,
		"plan",
		"",
		"YAML read plan listing the paths to read",
	)
	f.flagset.Var(
		&f.reads,
		"read",
		"path to read before checking, such as @/1 or 2/0 (may be repeated)",
	)
	f.flagset.BoolVar(&f.dump, "dump", false, "print the object in diagnostic notation")
	f.flagset.BoolVar(&f.json, "json", false, "print the object as AST JSON")
	f.flagset.StringVar(
		&f.color,
		"color",
		"auto",
		"colorize the result (auto, always or never)",
	)
	f.flagset.BoolVar(&f.debug, "debug", false, "enable debug logging")
	f.flagset.BoolVar(
		&f.dupKeys,
		"reject-duplicate-keys",
		false,
		"fail when a map contains the same key more than once",
	)
	f.flagset.IntVar(
		&f.maxDepth,
		"max-depth",
		0,
		"maximum container nesting depth (defaults to 256)",
	)
	return f
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	f := newGlobalFlags()
	f.flagset.SetOutput(stderr)
	if err := f.flagset.Parse(args); err != nil {
		return 1
	}
	logLevel := slog.LevelInfo
	if f.debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}),
	)

	paths := []string(f.reads)
	decodeOpts := []cbor.DecodeOptionFunc{
		cbor.WithLogger(logger),
		cbor.WithDuplicateKeyCheck(f.dupKeys),
	}
	if f.plan != "" {
		plan, err := loadReadPlan(f.plan)
		if err != nil {
			logger.Error("failed to load read plan", "path", f.plan, "error", err)
			return 1
		}
		paths = append(plan.Read, paths...)
		if plan.RejectDuplicateKeys {
			decodeOpts = append(decodeOpts, cbor.WithDuplicateKeyCheck(true))
		}
		if plan.MaxDepth > 0 {
			decodeOpts = append(decodeOpts, cbor.WithMaxDepth(plan.MaxDepth))
		}
	}
	if f.maxDepth > 0 {
		decodeOpts = append(decodeOpts, cbor.WithMaxDepth(f.maxDepth))
	}

	hexData, err := inputHex(f)
	if err != nil {
		logger.Error("failed to read input", "error", err)
		return 1
	}
	cborData, err := hex.DecodeString(hexData)
	if err != nil {
		logger.Error("failed to decode hex input", "error", err)
		return 1
	}
	obj, bytesRead, err := cbor.DecodeObject(cborData, decodeOpts...)
	if err != nil {
		logger.Error("failed to decode CBOR", "error", err)
		return 1
	}
	if bytesRead < len(cborData) {
		logger.Warn(
			"ignoring trailing data after first CBOR object",
			"bytes", len(cborData)-bytesRead,
		)
	}

	if f.dump {
		fmt.Fprintln(stdout, cbor.Dump(obj))
	}
	if f.json {
		jsonData, err := obj.MarshalJSON()
		if err != nil {
			logger.Error("failed to generate JSON", "error", err)
			return 1
		}
		fmt.Fprintln(stdout, string(jsonData))
	}

	for _, path := range paths {
		value, err := readPath(obj, path)
		if err != nil {
			logger.Error("failed to read path", "error", err)
			return 1
		}
		logger.Debug("read path", "path", path, "value", value)
		fmt.Fprintf(stdout, "%s = %s\n", displayPath(path), value)
	}

	okColor := color.New(color.FgGreen)
	failColor := color.New(color.FgRed, color.Bold)
	if useColor(f.color, stdout) {
		okColor.EnableColor()
		failColor.EnableColor()
	} else {
		okColor.DisableColor()
		failColor.DisableColor()
	}
	if err := obj.CheckForUnread(); err != nil {
		failColor.Fprintf(stdout, "FAIL: %s\n", err)
		return 1
	}
	okColor.Fprintln(stdout, "OK: every value was read")
	return 0
}

func inputHex(f *globalFlags) (string, error) {
	if f.file != "" {
		data, err := os.ReadFile(f.file)
		if err != nil {
			return "", err
		}
		return strings.Join(strings.Fields(string(data)), ""), nil
	}
	if f.flagset.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one hex CBOR argument, got %d", f.flagset.NArg())
	}
	return strings.TrimSpace(f.flagset.Arg(0)), nil
}

func displayPath(path string) string {
	if strings.Trim(path, "/") == "" {
		return "/"
	}
	return path
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
