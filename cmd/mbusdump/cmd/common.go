package cmd

import "github.com/sirupsen/logrus"

// configureLogger returns a logrus instance at the verbosity requested
// on the command line.
func configureLogger() *logrus.Logger {
	lg := logrus.New()
	if Verbose {
		lg.SetLevel(logrus.DebugLevel)
	} else {
		lg.SetLevel(logrus.InfoLevel)
	}
	return lg
}
