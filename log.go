package mbus

import "github.com/sirupsen/logrus"

// _lg is the package logger. It is only ever used for Debug-level
// tracing of what the decoder recognized (frame kind, chain length,
// selector overrides) — never to influence a decoding outcome.
var _lg = logrus.New()

// SetLogger overrides the package logger, e.g. to route decoder traces
// into an application's own logrus instance.
func SetLogger(lg *logrus.Logger) {
	_lg = lg
}
