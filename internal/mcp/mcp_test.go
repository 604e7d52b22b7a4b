package mcp

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deixis/subshell/internal/history"
	"github.com/deixis/subshell/internal/runner"
)

// setup creates a subshell MCP server + client over in-memory transports.
func setup(t *testing.T) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	r, err := runner.New(runner.Opts{Fallback: true})
	if err != nil {
		t.Fatalf("runner.New: %v", err)
	}
	store := history.NewLRUStore(5, history.NewDiskStore())
	server := NewServer(r, store)

	ct, st := mcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, st, nil)
	if err != nil {
		t.Fatalf("server.Connect: %v", err)
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, ct, nil)
	if err != nil {
		t.Fatalf("client.Connect: %v", err)
	}

	t.Cleanup(func() {
		_ = cs.Close()
		_ = ss.Wait()
	})

	return cs
}

func callTool(t *testing.T, cs *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	return res
}

func resultText(r *mcp.CallToolResult) string {
	var parts []string
	for _, c := range r.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

var runIDPattern = regexp.MustCompile(`Run: (\S+)`)

func TestShellRun(t *testing.T) {
	cs := setup(t)
	res := callTool(t, cs, "shell_run", map[string]any{"command": "echo hello"})
	text := resultText(res)
	if res.IsError {
		t.Fatalf("unexpected error: %s", text)
	}
	if !strings.Contains(text, "hello") {
		t.Errorf("expected captured output, got:\n%s", text)
	}
	if !strings.Contains(text, "Command exited with status 0.") {
		t.Errorf("expected exit status line, got:\n%s", text)
	}
	if !runIDPattern.MatchString(text) {
		t.Errorf("expected a run ID, got:\n%s", text)
	}
}

func TestShellRun_NonZeroExitIsReportedNotAnError(t *testing.T) {
	cs := setup(t)
	res := callTool(t, cs, "shell_run", map[string]any{"command": "exit 3"})
	text := resultText(res)
	if res.IsError {
		t.Fatalf("non-zero exit should not be a tool error: %s", text)
	}
	if !strings.Contains(text, "Command exited with status 3.") {
		t.Errorf("expected exit status 3, got:\n%s", text)
	}
}

func TestShellRun_MissingCommand(t *testing.T) {
	cs := setup(t)
	res := callTool(t, cs, "shell_run", map[string]any{})
	if !res.IsError {
		t.Fatal("expected an error for missing command")
	}
}

func TestShellResult(t *testing.T) {
	cs := setup(t)
	run := callTool(t, cs, "shell_run", map[string]any{"command": "echo stored"})
	m := runIDPattern.FindStringSubmatch(resultText(run))
	if m == nil {
		t.Fatalf("no run ID in:\n%s", resultText(run))
	}

	res := callTool(t, cs, "shell_result", map[string]any{"run_id": m[1]})
	text := resultText(res)
	if res.IsError {
		t.Fatalf("unexpected error: %s", text)
	}
	if !strings.Contains(text, "echo stored") || !strings.Contains(text, "stored") {
		t.Errorf("expected stored command and output, got:\n%s", text)
	}
}

func TestShellResult_UnknownID(t *testing.T) {
	cs := setup(t)
	res := callTool(t, cs, "shell_result", map[string]any{"run_id": "nope"})
	if !res.IsError {
		t.Fatal("expected an error for unknown run_id")
	}
}
