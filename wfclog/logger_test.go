package wfclog_test

import (
	"bytes"
	"testing"

	"github.com/arcweave/latticewfc/wfclog"
	"github.com/stretchr/testify/require"
)

func TestStandardWritesLeveledLines(t *testing.T) {
	var buf bytes.Buffer
	logger := wfclog.Standard(&buf)

	logger.Infof("chunk %d merged", 3)
	logger.Errorf("task failed: %s", "boom")

	output := buf.String()
	require.Contains(t, output, "[INFO]")
	require.Contains(t, output, "chunk 3 merged")
	require.Contains(t, output, "[ERROR]")
	require.Contains(t, output, "task failed: boom")
}

func TestNilLoggerHelpersNoop(t *testing.T) {
	require.NotPanics(t, func() {
		wfclog.Debugf(nil, "no-op %d", 1)
		wfclog.Infof(nil, "no-op")
		wfclog.Warnf(nil, "no-op")
		wfclog.Errorf(nil, "no-op")
	})
}
