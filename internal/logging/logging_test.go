package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/ava12/bnfrule/internal/test"
)

func TestGetLevel(t *testing.T) {
	samples := map[string]logrus.Level{
		"":      logrus.InfoLevel,
		"info":  logrus.InfoLevel,
		"DEBUG": logrus.DebugLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
	}

	for name, expected := range samples {
		lvl, e := GetLevel(name)
		test.Assert(t, e == nil, "%q: unexpected error: %v", name, e)
		test.Expect(t, lvl == expected, expected, lvl)
	}

	_, e := GetLevel("verbose")
	test.Assert(t, e != nil, "expecting error on unknown level")
}

func TestGetFormatter(t *testing.T) {
	for _, name := range []string{"", TextFormat, JSONFormat, JSONPrettyFormat} {
		f, e := GetFormatter(name)
		test.Assert(t, e == nil && f != nil, "%q: unexpected error: %v", name, e)
	}

	_, e := GetFormatter("xml")
	test.Assert(t, e != nil, "expecting error on unknown format")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, e := New(&buf, "info", JSONFormat)
	test.Assert(t, e == nil, "unexpected error: %v", e)

	logger.Debug("hidden")
	logger.WithField("code", 3).Error("failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	test.ExpectInt(t, 1, len(lines))

	var entry map[string]any
	e = json.Unmarshal([]byte(lines[0]), &entry)
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.Expect(t, entry["msg"] == "failed", "failed", entry["msg"])
	test.Expect(t, entry["level"] == "error", "error", entry["level"])
	test.Expect(t, entry["code"] == float64(3), 3, entry["code"])
}

func TestNewErrors(t *testing.T) {
	var buf bytes.Buffer
	_, e := New(&buf, "loud", TextFormat)
	test.Assert(t, e != nil, "expecting error on invalid level")
	_, e = New(&buf, "debug", "xml")
	test.Assert(t, e != nil, "expecting error on invalid format")
}
