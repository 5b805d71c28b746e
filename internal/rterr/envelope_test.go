package rterr

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestDoesNotProduceStackTrace(t *testing.T) {
	require := require.New(t)

	os.Unsetenv(backtraceEnvVar)

	err := TypedErrorf("Test error")
	env := NewErrorEnvelope(err)

	require.Equal("Test error", env.ErrorMessage)
	require.Equal(GoRuntimeErrorType, env.ErrorType)
	require.Nil(env.StackTrace)
}

func TestProducesStackTraceWhenEnabled(t *testing.T) {
	require := require.New(t)

	os.Setenv(backtraceEnvVar, "1")
	defer os.Unsetenv(backtraceEnvVar)

	err := TypedErrorf("Test error")
	env := NewErrorEnvelope(err)

	require.Equal("Test error", env.ErrorMessage)
	require.NotEmpty(env.StackTrace)
	require.Contains(env.StackTrace[0], "rterr.TestProducesStackTraceWhenEnabled")
}

func TestEnvelopeMessageMatchesErrorRendering(t *testing.T) {
	require := require.New(t)

	apiErr := WrapAPIError(
		Unrecoverable("configuration rejected"),
		TypedErrorf("missing runtime address"),
	)
	env := NewErrorEnvelope(apiErr)

	require.Equal(apiErr.Error(), env.ErrorMessage)
	require.Equal(RuntimeAPIErrorType, env.ErrorType)
}

func TestEnvelopeConversionIsStable(t *testing.T) {
	require := require.New(t)

	os.Unsetenv(backtraceEnvVar)

	err := NewAPIError(Recoverable("try again"))
	env1 := NewErrorEnvelope(err)
	env2 := NewErrorEnvelope(err)

	require.Equal(env1.ErrorMessage, env2.ErrorMessage)
	require.Equal(env1.ErrorType, env2.ErrorType)
	require.Nil(env1.StackTrace)
	require.Nil(env2.StackTrace)
}

func TestEnvelopeWireFieldNames(t *testing.T) {
	require := require.New(t)

	os.Unsetenv(backtraceEnvVar)

	bs, err := json.Marshal(NewErrorEnvelope(TypedErrorf("Test error")))
	require.NoError(err)
	require.JSONEq(
		`{"errorMessage": "Test error", "errorType": "GoRuntimeError"}`,
		string(bs),
	)

	os.Setenv(backtraceEnvVar, "1")
	defer os.Unsetenv(backtraceEnvVar)

	bs, err = json.Marshal(NewErrorEnvelope(TypedErrorf("Test error")))
	require.NoError(err)

	var record map[string]interface{}
	require.NoError(json.Unmarshal(bs, &record))
	require.Contains(record, "errorMessage")
	require.Contains(record, "errorType")
	require.Contains(record, "stackTrace")
}

func TestConversionEmitsTraceDiagnostics(t *testing.T) {
	require := require.New(t)

	os.Setenv(backtraceEnvVar, "1")
	defer os.Unsetenv(backtraceEnvVar)

	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.TraceLevel)
	SetLogger(log)
	defer SetLogger(nil)

	_ = NewErrorEnvelope(TypedErrorf("Test error"))

	entries := hook.AllEntries()
	require.Len(entries, 2)
	require.Equal("begin backtrace collection", entries[0].Message)
	require.Equal("completed backtrace collection", entries[1].Message)
	require.Equal(logrus.TraceLevel, entries[0].Level)
}
