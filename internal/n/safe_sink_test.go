package n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSafeSinkDeliversToAllSinks(t *testing.T) {
	require := require.New(t)

	got1 := make(chan string, 1)
	got2 := make(chan string, 1)

	sink, cancel := NewSafeSink(map[string]LogSink{
		"first":  func(msg string) { got1 <- msg },
		"second": func(msg string) { got2 <- msg },
	})
	defer cancel()

	sink("begin backtrace collection")

	require.Equal("begin backtrace collection", <-got1)
	require.Equal("begin backtrace collection", <-got2)
}

func TestSafeSinkContainsSinkPanics(t *testing.T) {
	require := require.New(t)

	panics := make(chan interface{}, 1)
	got := make(chan string, 2)

	sink, cancel := NewSafeSink(
		map[string]LogSink{
			"flaky": func(msg string) {
				if msg == "boom" {
					panic("sink blew up")
				}
				got <- msg
			},
		},
		WithOnSinkPanic(func(name string, reason interface{}) {
			panics <- reason
		}),
	)
	defer cancel()

	require.NotPanics(func() { sink("boom") })
	require.Equal("sink blew up", <-panics)

	// the worker survives the panic and keeps consuming
	sink("still alive")
	require.Equal("still alive", <-got)
}

func TestSafeSinkSkipsSlowSinks(t *testing.T) {
	require := require.New(t)

	timeouts := make(chan string, 1)
	release := make(chan struct{})

	sink, cancel := NewSafeSink(
		map[string]LogSink{
			"slow": func(msg string) { <-release },
		},
		WithSinkTimeout(5*time.Millisecond),
		WithOnSinkTimeout(func(name string) { timeouts <- name }),
	)
	defer cancel()
	defer close(release)

	// first message occupies the worker, second cannot be handed over
	sink("occupies worker")
	sink("gets dropped")

	require.Equal("slow", <-timeouts)
}

func TestSafeSinkCancelIsIdempotent(t *testing.T) {
	sink, cancel := NewSafeSink(map[string]LogSink{
		"noop": func(string) {},
	})

	cancel()
	require.NotPanics(t, func() { cancel() })
	// messages after cancellation are dropped, not delivered nor panicking
	require.NotPanics(t, func() { sink("dropped") })
}
