// Copyright (c) 2025 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/mstarongithub/gayshell/config"
)

var (
	flagConfig = flag.String("config", "", "Path to the config file. Defaults to "+config.DefaultPath+" in the xdg config dirs")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagTool   = flag.Bool("tool", false, "Run in tool mode instead of starting the shell")
)

func main() {
	flag.Parse()
	if *flagDebug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	conf, err := config.Load(*flagConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load the config")
	}
	if *flagTool {
		toolMain(conf)
		return
	}
	shellMain(conf)
}
