package rterr

import (
	"io"

	"github.com/sirupsen/logrus"
)

// ll is the package log sink. Conversions only emit trace-level diagnostics
// through it; by default everything is discarded.
var ll logrus.Ext1FieldLogger = newDiscardLogger()

func newDiscardLogger() *logrus.Logger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

// SetLogger installs the logger used for trace-level diagnostics emitted by
// the envelope conversion. A nil logger restores the discarding default.
// Call it once during program setup, before errors start flowing; the sink
// is not guarded for concurrent replacement.
func SetLogger(logger logrus.Ext1FieldLogger) {
	if logger == nil {
		ll = newDiscardLogger()
		return
	}
	ll = logger
}
