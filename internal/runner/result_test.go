package runner

import (
	"strings"
	"testing"
)

func TestResult_OkFailed(t *testing.T) {
	ok := &Result{Exited: 0}
	if !ok.Ok() || ok.Failed() {
		t.Errorf("Exited 0: Ok = %v, Failed = %v", ok.Ok(), ok.Failed())
	}
	bad := &Result{Exited: 3}
	if bad.Ok() || !bad.Failed() {
		t.Errorf("Exited 3: Ok = %v, Failed = %v", bad.Ok(), bad.Failed())
	}
	if bad.ReturnCode() != 3 {
		t.Errorf("ReturnCode = %d, want 3", bad.ReturnCode())
	}
}

func TestResult_String(t *testing.T) {
	r := &Result{Exited: 2, Stdout: "some output\n"}
	s := r.String()
	if !strings.Contains(s, "Command exited with status 2.") {
		t.Errorf("missing status line in %q", s)
	}
	if !strings.Contains(s, "=== stdout ===\nsome output") {
		t.Errorf("missing stdout section in %q", s)
	}
	if !strings.Contains(s, "(no stderr)") {
		t.Errorf("missing empty-stderr marker in %q", s)
	}

	empty := &Result{}
	if !strings.Contains(empty.String(), "(no stdout)") {
		t.Errorf("missing empty-stdout marker in %q", empty.String())
	}
}
