package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ava12/bnfrule/export"
	"github.com/ava12/bnfrule/internal/test"
	"github.com/ava12/bnfrule/symbol"
)

func runCommand(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRuleArguments(t *testing.T) {
	code, stdout, stderr := runCommand(t, "", `<A> "b"`, `"a" | "b"`, `<A> ("b" | <C>)`)
	test.ExpectInt(t, exitOK, code)
	test.ExpectString(t, "<A> \"b\"\n(\"a\") | (\"b\")\n(<A> \"b\") | (<A> <C>)\n", stdout)
	test.ExpectString(t, "", stderr)
}

func TestJSONOutput(t *testing.T) {
	code, stdout, _ := runCommand(t, "", "-o", "json", `<A> "\"b"`)
	test.ExpectInt(t, exitOK, code)

	var item export.Item
	e := json.Unmarshal([]byte(stdout), &item)
	test.Assert(t, e == nil, "unexpected error: %v", e)
	n, e := item.Node()
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectNode(t, symbol.Sequence{symbol.Reference("A"), symbol.Literal(`"b`)}, n)
}

func TestRuleErrors(t *testing.T) {
	code, stdout, stderr := runCommand(t, "", "<A", "<B>", `"x`)
	test.ExpectInt(t, exitRuleError, code)
	test.ExpectString(t, "<B>\n", stdout)
	test.Assert(t, strings.Contains(stderr, "unterminated symbol reference"), "unexpected log: %s", stderr)
	test.Assert(t, strings.Contains(stderr, "unterminated literal"), "unexpected log: %s", stderr)
	test.Assert(t, strings.Contains(stderr, "arg #3"), "unexpected log: %s", stderr)
}

func TestStdin(t *testing.T) {
	code, stdout, _ := runCommand(t, "<A>\n\n  \n\"a\" | <B>\n")
	test.ExpectInt(t, exitOK, code)
	test.ExpectString(t, "<A>\n(\"a\") | (<B>)\n", stdout)

	code, stdout, _ = runCommand(t, "<C>\n", "-f", "-")
	test.ExpectInt(t, exitOK, code)
	test.ExpectString(t, "<C>\n", stdout)
}

func TestFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "rules.txt")
	e := os.WriteFile(name, []byte("<A> \"b\" \"c\"\n\n<D\n"), 0o644)
	test.Assert(t, e == nil, "unexpected error: %v", e)

	code, stdout, stderr := runCommand(t, "", "--file", name, "--log-format", "json")
	test.ExpectInt(t, exitRuleError, code)
	test.ExpectString(t, "<A> \"bc\"\n", stdout)

	var entry map[string]any
	e = json.Unmarshal([]byte(strings.TrimSpace(stderr)), &entry)
	test.Assert(t, e == nil, "unexpected error: %v in %q", e, stderr)
	test.Expect(t, entry["source"] == name+":3", name+":3", entry["source"])
	test.Expect(t, entry["line"] == float64(1), 1, entry["line"])
	test.Expect(t, entry["col"] == float64(1), 1, entry["col"])
}

func TestDebugLog(t *testing.T) {
	code, _, stderr := runCommand(t, "", "--log-level", "debug", "<A>")
	test.ExpectInt(t, exitOK, code)
	test.Assert(t, strings.Contains(stderr, "parsing rule"), "unexpected log: %s", stderr)
	test.Assert(t, strings.Contains(stderr, "total=1"), "unexpected log: %s", stderr)
}

func TestEnvironmentFormat(t *testing.T) {
	t.Setenv("BNFRULE_FORMAT", "yaml")
	code, stdout, _ := runCommand(t, "", "<A>")
	test.ExpectInt(t, exitOK, code)
	test.Assert(t, strings.HasPrefix(stdout, "---\n"), "expecting YAML, got %q", stdout)
}

func TestConfigFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "bnfrule.toml")
	e := os.WriteFile(name, []byte("format = \"json\"\n"), 0o644)
	test.Assert(t, e == nil, "unexpected error: %v", e)

	code, stdout, _ := runCommand(t, "", "--config", name, "<A>")
	test.ExpectInt(t, exitOK, code)
	test.Assert(t, strings.HasPrefix(stdout, "{"), "expecting JSON, got %q", stdout)
}

func TestUsageErrors(t *testing.T) {
	samples := [][]string{
		{"-o", "xml", "<A>"},
		{"-f", "rules.txt", "<A>"},
		{"-f", filepath.Join(t.TempDir(), "missing.txt")},
		{"--log-level", "loud", "<A>"},
		{"--unknown"},
	}

	for _, args := range samples {
		code, stdout, stderr := runCommand(t, "", args...)
		test.Assert(t, code == exitUsage, "%v: expecting exit code %d, got %d", args, exitUsage, code)
		test.ExpectString(t, "", stdout)
		test.Assert(t, stderr != "", "%v: expecting error message", args)
	}
}
