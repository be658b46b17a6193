package apps

import (
	"os/exec"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/mstarongithub/gayshell/util/multiplexer"
)

// ExitNotice reports that a launched application ended
type ExitNotice struct {
	Pid  int
	Name string
	// Exit code of the process, -1 if it died to a signal
	Code int
}

// Launcher starts applications detached from the shell
// Exit notices from all launched children funnel into one plexer so a single
// reaper goroutine can log them in order
type Launcher struct {
	exits *multiplexer.ManyToOne[ExitNotice]
}

func NewLauncher(exits *multiplexer.ManyToOne[ExitNotice]) *Launcher {
	return &Launcher{exits: exits}
}

// Launch fires off the given entry and returns immediately
// A failed start is logged, never propagated: the menu shouldn't die because
// one desktop file points at a missing binary
func (l *Launcher) Launch(entry Entry) {
	argv := CommandLine(entry.Exec)
	if len(argv) == 0 {
		logrus.WithField("name", entry.Name).Errorln("Entry has an empty command line")
		return
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	// New session so the child survives the shell and never gets our terminal
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"name":    entry.Name,
			"command": argv[0],
		}).Errorln("Failed to launch application")
		return
	}
	logrus.WithFields(logrus.Fields{
		"name": entry.Name,
		"pid":  cmd.Process.Pid,
	}).Debugln("Launched application")
	go func() {
		err := cmd.Wait()
		code := -1
		if cmd.ProcessState != nil {
			code = cmd.ProcessState.ExitCode()
		}
		if err != nil {
			if _, ok := err.(*exec.ExitError); !ok {
				logrus.WithError(err).WithField("name", entry.Name).Warningln("Waiting on child failed")
			}
		}
		_ = l.exits.Send(ExitNotice{Pid: cmd.Process.Pid, Name: entry.Name, Code: code})
	}()
}
