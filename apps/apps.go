// Copyright (c) 2025 mStar
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package apps enumerates installed desktop applications and launches them
package apps

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/sirupsen/logrus"

	"github.com/mstarongithub/gayshell/util"
)

// Entry is one launchable application from a .desktop file
type Entry struct {
	// Display name shown in the menu
	Name string
	// Raw Exec= line, field codes still included
	Exec string
	// Path of the .desktop file this came from
	Path string
}

// Scan collects application entries from the applications/ subdirectory of
// every xdg data dir, user dir first
// Unreadable or malformed files are skipped with a debug log, they never fail the scan
func Scan() []Entry {
	dirs := make([]string, 0, len(xdg.DataDirs)+1)
	dirs = append(dirs, xdg.DataHome)
	dirs = append(dirs, xdg.DataDirs...)
	return ScanDirs(dirs)
}

// ScanDirs is Scan over an explicit list of data dirs
// Entries are deduplicated by desktop file name, earlier dirs win
func ScanDirs(dirs []string) []Entry {
	entries := []Entry{}
	seen := map[string]bool{}
	for _, dir := range dirs {
		pattern := filepath.Join(dir, "applications", "*.desktop")
		matches, err := filepath.Glob(pattern)
		if err != nil {
			logrus.WithError(err).WithField("pattern", pattern).Debugln("Skipping bad data dir")
			continue
		}
		for _, file := range matches {
			id := filepath.Base(file)
			if seen[id] {
				continue
			}
			seen[id] = true
			entry, ok, err := parseDesktopFile(file)
			if err != nil {
				logrus.WithError(err).WithField("file", file).Debugln("Skipping unreadable desktop file")
				continue
			}
			if ok {
				entries = append(entries, entry)
			}
		}
	}
	logrus.WithField("entries", len(entries)).Debugln("Scanned desktop files")
	return entries
}

// parseDesktopFile pulls the fields the menu cares about out of one .desktop file
// The bool result reports whether the file describes a visible application at all
func parseDesktopFile(path string) (Entry, bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return Entry{}, false, err
	}
	defer file.Close()

	entry := Entry{Path: path}
	isApplication := false
	hidden := false
	inDesktopEntry := false

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			// Only the main group matters, actions and the like don't
			inDesktopEntry = line == "[Desktop Entry]"
			continue
		}
		if !inDesktopEntry {
			continue
		}
		var key, value string
		util.Unpack(strings.SplitN(line, "=", 2), &key, &value)
		switch strings.TrimSpace(key) {
		case "Type":
			isApplication = strings.TrimSpace(value) == "Application"
		case "Name":
			if entry.Name == "" {
				entry.Name = strings.TrimSpace(value)
			}
		case "Exec":
			if entry.Exec == "" {
				entry.Exec = strings.TrimSpace(value)
			}
		case "NoDisplay", "Hidden":
			if strings.TrimSpace(value) == "true" {
				hidden = true
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return Entry{}, false, err
	}

	ok := isApplication && !hidden && entry.Name != "" && entry.Exec != ""
	return entry, ok, nil
}

// CommandLine splits an Exec= value into an argument vector
// Field codes (%f, %U, ...) are dropped since there is nothing to substitute,
// a literal %% collapses to %
// Quoting support is limited to whole double quoted arguments, which covers
// what real desktop files do
func CommandLine(exec string) []string {
	argv := []string{}
	fields := splitQuoted(exec)
	for _, field := range fields {
		if len(field) == 2 && field[0] == '%' {
			if field == "%%" {
				argv = append(argv, "%")
			}
			continue
		}
		argv = append(argv, field)
	}
	return argv
}

func splitQuoted(s string) []string {
	fields := []string{}
	var current strings.Builder
	inQuotes := false
	hasField := false
	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			hasField = true
		case r == ' ' && !inQuotes:
			if hasField {
				fields = append(fields, current.String())
				current.Reset()
				hasField = false
			}
		default:
			current.WriteRune(r)
			hasField = true
		}
	}
	if hasField {
		fields = append(fields, current.String())
	}
	return fields
}
