package main

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/mstarongithub/gayshell/common/ipc"
	"github.com/mstarongithub/gayshell/config"
)

var (
	flagToolAction = flag.String("action", "outputs", "Tool mode action. Available: outputs")
	flagToolOutput = flag.String("output", "", "Restrict the outputs action to the output with this name")
	flagToolModes  = flag.Bool("modes", false, "Include the full mode list in the outputs action")
)

// toolMain answers one query against a live compositor and exits
// It talks the same discovery path as the shell, it just never takes surfaces
func toolMain(conf *config.Config) {
	if *flagToolAction != "outputs" {
		logrus.WithField("action", *flagToolAction).Fatal("Unknown tool action")
	}

	session := NewSession(conf, nil, nil, nil)
	// No backgrounds in tool mode
	session.provision = nil
	if err := session.Connect(); err != nil {
		logrus.WithError(err).Fatal("Failed to connect to the compositor")
	}
	defer session.Disconnect()

	report := ipc.OutputReport{Outputs: []ipc.OutputInfo{}}
	for _, output := range session.outputs {
		if *flagToolOutput != "" && output.Name() != *flagToolOutput {
			continue
		}
		info := ipc.OutputInfo{
			Name:   output.Name(),
			Width:  int(output.width),
			Height: int(output.height),
			Scale:  int(output.scale),
		}
		if *flagToolModes {
			for _, mode := range output.modes {
				info.Modes = append(info.Modes, ipc.OutputMode{
					Width:       int(mode.width),
					Height:      int(mode.height),
					RefreshRate: int(mode.refresh),
					Current:     mode.current,
				})
			}
		}
		report.Outputs = append(report.Outputs, info)
	}
	report.OutputsFound = len(report.Outputs)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		logrus.WithError(err).Fatal("Failed to print the output report")
	}
}
