/*
 * Copyright (c) 2023-present unTill Pro, Ltd. and Contributors
 *
 * This source code is licensed under the MIT license found in the
 * LICENSE file in the root directory of this source tree.
 */

// Command trove prints an autoreleased string from inside a scoped pool
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/wess/trove"
	"github.com/wess/trove/objects"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("trove", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to a TOML config file")
	verbosity := fs.Int("v", -1, "Log verbosity, overrides the config")
	text := fs.String("text", "Hello, trove ARC with TROVE macro!", "Text to print")
	noPool := fs.Bool("no-pool", false, "Also autorelease the text after the scope, with no pool in place")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := trove.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = trove.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *verbosity >= 0 {
		cfg.Verbosity = *verbosity
	}
	var logPath *string
	if cfg.LogPath != "" {
		logPath = &cfg.LogPath
	}
	commonlog.Configure(cfg.Verbosity, logPath)
	trove.SetDebug(cfg.Debug)
	defer trove.SetDebug(false)

	stack := trove.NewStack(cfg)
	stack.Scope(func() {
		greeting := objects.AutoString(stack, *text)
		fmt.Fprintln(stdout, greeting.Value())
		// greeting is released when the scope ends
	})

	if *noPool {
		// reported as an error, the string stays owned by us
		orphan := objects.AutoString(stack, *text)
		trove.Release(orphan)
	}

	if cfg.Debug {
		trove.PrintLeaked(stderr)
	}
	return nil
}
