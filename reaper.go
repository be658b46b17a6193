package main

import (
	"github.com/sirupsen/logrus"

	"github.com/mstarongithub/gayshell/apps"
)

// reapChildren drains exit notices of launched applications and logs them
// One goroutine serializes all the reaping, the per-child waiters only send
func reapChildren(exits <-chan apps.ExitNotice) {
	for notice := range exits {
		logrus.WithFields(logrus.Fields{
			"name":      notice.Name,
			"pid":       notice.Pid,
			"exit-code": notice.Code,
		}).Infoln("Application exited")
	}
}
