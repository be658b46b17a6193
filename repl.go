package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mstarongithub/gayshell/repl"
	"github.com/mstarongithub/gayshell/util"
	"github.com/mstarongithub/gayshell/util/wrappers"
)

// replRunner drives the debug repl on stdin/stdout
// The entry list is immutable after startup and the launcher is safe to call
// from anywhere, so this goroutine never touches dispatch-owned state except
// for read-only inspection
func replRunner(session *Session) {
	// Give repl some wrappers around stdin and stdout so that it closes those instead of stdin & stdout themselves
	commandRepl := repl.NewRepl(wrappers.NewReaderWrapper(os.Stdin), wrappers.NewWriterWrapper(os.Stdout))
	logrus.Debugln("Starting repl")
	_ = commandRepl.Run(func(input string, r *repl.Repl) (string, error) {
		if input == "list" {
			if len(session.entries) == 0 {
				return "No applications found", nil
			}
			names := make([]string, 0, len(session.entries))
			for _, entry := range session.entries {
				names = append(names, entry.Name)
			}
			return strings.Join(names, "\n"), nil
		} else if name, ok := strings.CutPrefix(input, "launch "); ok {
			for _, entry := range session.entries {
				if entry.Name == name {
					session.launcher.Launch(entry)
					return "Launching " + name, nil
				}
			}
			return "No application named " + name, nil
		} else if rawCmdString, ok := strings.CutPrefix(input, "inspect "); ok {
			// Can't unpack slices directly like in Python, so do it this roundabout way
			var target, args string
			util.Unpack(strings.SplitN(rawCmdString, " ", 2), &target, &args)
			switch target {
			case "outputs":
				if len(session.outputs) == 0 {
					return "No outputs known", nil
				}
				lines := []string{}
				for _, output := range session.outputs {
					state := "no background yet"
					if output.background != nil {
						state = fmt.Sprintf("background %dx%d", output.background.width, output.background.height)
					}
					lines = append(lines, fmt.Sprintf(
						"%s: %dx%d scale %d, %d modes, %s",
						output.Name(), output.width, output.height, output.scale, len(output.modes), state))
				}
				return strings.Join(lines, "\n"), nil
			case "cursor":
				return fmt.Sprintf("Current cursor: %q", session.currentCursor), nil
			default:
				return "Unknown inspect target, try outputs or cursor", nil
			}
		} else if input == "quit" {
			session.Stop()
			return "Quitting", errors.New("normal stop")
		}
		return "Unknown command", nil
	})
}
