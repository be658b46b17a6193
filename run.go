package main

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/mstarongithub/gayshell/apps"
	"github.com/mstarongithub/gayshell/config"
	"github.com/mstarongithub/gayshell/render"
	"github.com/mstarongithub/gayshell/util/multiplexer"
)

// shellMain wires everything together and blocks on the dispatch loop
func shellMain(conf *config.Config) {
	painter, err := render.NewPainter(conf)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to prepare the renderer")
	}

	entries := apps.Scan()
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	logrus.WithField("applications", len(entries)).Infoln("Application entries collected")

	// All child exits funnel through one plexer into one logging reaper
	exitChan := make(chan apps.ExitNotice)
	exitPlexer := multiplexer.NewManyToOne(exitChan)
	launcher := apps.NewLauncher(&exitPlexer)
	go reapChildren(exitChan)

	session := NewSession(conf, entries, launcher, painter)
	if err := session.Connect(); err != nil {
		logrus.WithError(err).Fatal("Failed to connect to the compositor")
	}
	defer session.Disconnect()
	if err := session.RequireShellGlobals(); err != nil {
		logrus.WithError(err).Fatal("Compositor misses required globals")
	}
	if err := session.AnnounceReady(); err != nil {
		logrus.WithError(err).Fatal("Failed to announce readiness")
	}

	go replRunner(session)

	if err := session.Run(); err != nil {
		logrus.WithError(err).Fatal("Display connection broke down")
	}
}
