package n

import (
	"context"
	"sync"
	"time"
)

// LogSink consumes a single trace-level log message. Sinks are client
// provided collaborators (loggers, files, network forwarders); per the
// reporting contract, a sink failing to log must never become an error for
// the code that emitted the message.
type LogSink func(msg string)

// sinkSettings contains settings and callbacks for a SafeSink instance
type sinkSettings struct {
	sinkTimeoutDuration time.Duration

	onSinkPanic   func(name string, reason interface{})
	onSinkTimeout func(name string)
}

// SafeSinkOpt allows clients to tweak the behavior of a SafeSink instance
type SafeSinkOpt func(*sinkSettings)

// WithSinkTimeout sets the maximum allowed time the safe sink is going to
// wait for a sink function to be ready to receive a message (defaults to 10
// millis).
func WithSinkTimeout(ts time.Duration) SafeSinkOpt {
	return func(settings *sinkSettings) {
		settings.sinkTimeoutDuration = ts
	}
}

// WithOnSinkTimeout sets a callback that gets executed when a given sink is
// so slow to get a message that it gets skipped
func WithOnSinkTimeout(cb func(string)) SafeSinkOpt {
	return func(settings *sinkSettings) {
		settings.onSinkTimeout = cb
	}
}

// WithOnSinkPanic sets a callback that gets executed when a given sink
// panics while consuming a message
func WithOnSinkPanic(cb func(string, interface{})) SafeSinkOpt {
	return func(settings *sinkSettings) {
		settings.onSinkPanic = cb
	}
}

// runSinkWorker listens to a channel dedicated to the given sink. In the
// situation the sink function panics, the panic is contained and reported,
// and the worker keeps consuming messages.
func runSinkWorker(
	settings sinkSettings,
	name string,
	sinkFn LogSink,
	ch chan string,
	done chan struct{},
) {
	consume := func(msg string) {
		defer func() {
			if reason := recover(); reason != nil {
				settings.onSinkPanic(name, reason)
			}
		}()
		sinkFn(msg)
	}

	for {
		select {
		case <-done:
			return
		case msg := <-ch:
			consume(msg)
		}
	}
}

// NewSafeSink builds a LogSink that fans each message out to all the given
// sinks, guaranteeing it never panics the execution of its caller, and that
// it keeps delivering messages to the remaining sinks despite previous
// panics. The returned CancelFunc stops the sink workers; messages sent
// after cancellation are dropped.
func NewSafeSink(
	sinkFns map[string]LogSink,
	opts ...SafeSinkOpt,
) (LogSink, context.CancelFunc) {

	// default sink settings
	settings := sinkSettings{
		sinkTimeoutDuration: 10 * time.Millisecond,
		onSinkPanic:         func(string, interface{}) {},
		onSinkTimeout:       func(string) {},
	}

	for _, optFn := range opts {
		optFn(&settings)
	}

	done := make(chan struct{})
	sinkChans := make(map[string](chan string))

	for name, sinkFn := range sinkFns {
		ch := make(chan string)
		sinkChans[name] = ch
		go runSinkWorker(settings, name, sinkFn, ch, done)
	}

	safeSink := func(msg string) {
		for name, ch := range sinkChans {
			sendCtx, stopTimer := context.WithTimeout(
				context.Background(),
				settings.sinkTimeoutDuration,
			)
			select {
			case <-done:
				stopTimer()
				return

			case <-sendCtx.Done():
				settings.onSinkTimeout(name)

			case ch <- msg:
			}
			stopTimer()
		}
	}

	var cancelOnce sync.Once
	cancelFn := func() {
		cancelOnce.Do(func() { close(done) })
	}

	return safeSink, cancelFn
}
