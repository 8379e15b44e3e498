package test

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ava12/bnfrule"
)

func fatalf(t *testing.T, message string, params ...any) {
	t.Helper()
	if len(params) > 0 {
		message = fmt.Sprintf(message, params...)
	}
	_, thisFile, _, _ := runtime.Caller(0)
	file := thisFile
	line := 0
	for i := 2; file == thisFile; i++ {
		_, file, line, _ = runtime.Caller(i)
	}
	t.Fatalf("%s at %s:%d", message, file, line)
}

func Assert(t *testing.T, cond bool, message string, params ...any) {
	t.Helper()
	if !cond {
		fatalf(t, message, params...)
	}
}

func Expect(t *testing.T, cond bool, expected, got any) {
	t.Helper()
	if !cond {
		fatalf(t, "expecting %v, got %v", expected, got)
	}
}

func ExpectBool(t *testing.T, expected, got bool) {
	t.Helper()
	Expect(t, expected == got, expected, got)
}

func ExpectInt(t *testing.T, expected, got int) {
	t.Helper()
	Expect(t, expected == got, expected, got)
}

func ExpectString(t *testing.T, expected, got string) {
	t.Helper()
	if expected != got {
		fatalf(t, "expecting %q, got %q", expected, got)
	}
}

// ExpectNode compares rule trees, nil and empty sequences are equal.
func ExpectNode(t *testing.T, expected, got any) {
	t.Helper()
	diff := cmp.Diff(expected, got, cmpopts.EquateEmpty())
	if diff != "" {
		fatalf(t, "expecting %v, got %v (-expected +got):\n%s", expected, got, diff)
	}
}

func ExpectErrorCode(t *testing.T, expected int, e error) {
	t.Helper()
	var ee *bnfrule.Error
	if errors.As(e, &ee) && ee.Code == expected {
		return
	}

	fatalf(t, "expecting error code %d, got %v", expected, e)
}
