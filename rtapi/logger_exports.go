package rtapi

import (
	"github.com/funcrtlib/go-funcrt/internal/n"
	"github.com/funcrtlib/go-funcrt/internal/rterr"
)

// SetLogger installs the logger used for the trace-level diagnostics emitted
// by the envelope conversion. A nil logger restores the discarding default.
//
// Since: 0.0.0
var SetLogger = rterr.SetLogger

// LogSink consumes a single trace-level log message
//
// Since: 0.1.0
type LogSink = n.LogSink

// SafeSinkOpt allows clients to tweak the behavior of a LogSink instance
// built with NewSafeSink
//
// Since: 0.1.0
type SafeSinkOpt = n.SafeSinkOpt

// NewSafeSink builds a LogSink that guarantees it will never panic the
// execution of its caller, and that it will continue delivering messages to
// sinks despite previous panics
//
// Since: 0.1.0
var NewSafeSink = n.NewSafeSink

// WithSinkTimeout sets the maximum allowed time the safe sink is going to
// wait for a sink function to be ready to receive a message (defaults to 10
// millis)
//
// Since: 0.1.0
var WithSinkTimeout = n.WithSinkTimeout

// WithOnSinkTimeout sets a callback that gets executed when a given sink
// drops a message because it cannot process it in time
//
// Since: 0.1.0
var WithOnSinkTimeout = n.WithOnSinkTimeout

// WithOnSinkPanic sets a callback that gets executed when a given sink
// panics while consuming a message
//
// Since: 0.1.0
var WithOnSinkPanic = n.WithOnSinkPanic
