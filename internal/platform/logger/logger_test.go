package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Error, ParseLevel(" error "))
	assert.Equal(t, Info, ParseLevel("verbose"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("logfmt"))
}

func TestJSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "spy-cat-agency", Output: &buf})

	l.With(map[string]any{"request_id": "abc"}).Info("cat created", map[string]any{
		"cat_id": 7,
		"err":    errors.New("boom"),
		"":       "dropped",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "cat created", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "spy-cat-agency", entry["app"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.EqualValues(t, 7, entry["cat_id"])
	assert.Equal(t, "boom", entry["err"])
	assert.NotContains(t, entry, "")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatText, Output: &buf})

	l.Debug("hidden", nil)
	l.Info("hidden too", nil)
	l.Warn("breed lookup failed", map[string]any{"breed": "Siamese"})

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "breed lookup failed"))
}

func TestNopDoesNotPanic(t *testing.T) {
	l := Nop()
	l.With(map[string]any{"k": "v"}).Error("ignored", nil)
	Sync(l)
}
