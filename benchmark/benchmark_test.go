package benchmark

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rosalind_go/logger"
)

func TestMeasure(t *testing.T) {
	called := false
	r := Measure("sleep", func() {
		called = true
		time.Sleep(5 * time.Millisecond)
	})

	assert.True(t, called)
	assert.Equal(t, "sleep", r.Label)
	assert.GreaterOrEqual(t, r.Elapsed, 5*time.Millisecond)
	assert.Positive(t, r.CPUCores)
}

func TestRunLogs(t *testing.T) {
	var buf bytes.Buffer
	logger.Init(logger.Options{Level: "info", Format: "json", Writer: &buf})
	t.Cleanup(func() { logger.Init(logger.Options{}) })

	ran := false
	Run("gc_content in.fasta", func() { ran = true })

	assert.True(t, ran)
	assert.Contains(t, buf.String(), "benchmark finished")
	assert.Contains(t, buf.String(), `"run":"gc_content in.fasta"`)
}
