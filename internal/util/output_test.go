package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestPrintJSONEnvelope(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON(&buf, StructuredResult(true, "ok", map[string]int{"value": 1})))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, true, decoded["success"])
	assert.Equal(t, "ok", decoded["message"])
	assert.Equal(t, float64(1), decoded["data"].(map[string]interface{})["value"])

	buf.Reset()
	require.NoError(t, PrintJSON(&buf, StructuredResult(false, "", nil)))
	assert.Equal(t, "{\n  \"success\": false\n}\n", buf.String())
}

func TestPrintLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintLines(&buf, "one", "two"))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"one", "two"}, lines)

	assert.Error(t, PrintLines(brokenWriter{}, "one"))
}
