// Package mcp provides the subshell MCP server, exposing command execution
// and run-history lookup as tools.
package mcp

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deixis/subshell"
	"github.com/deixis/subshell/internal/history"
	"github.com/deixis/subshell/internal/runner"
)

//go:embed instructions.md
var Instructions string

// handler holds shared dependencies for all tool handlers.
type handler struct {
	mu     sync.Mutex // a Runner executes one command at a time
	runner *runner.Runner
	store  history.Store
}

// NewServer creates an MCP server with the subshell tools registered.
func NewServer(r *runner.Runner, store history.Store) *mcp.Server {
	h := &handler{runner: r, store: store}

	s := mcp.NewServer(&mcp.Implementation{Name: "subshell", Version: subshell.Version}, &mcp.ServerOptions{
		Instructions: Instructions,
		Capabilities: &mcp.ServerCapabilities{
			Tools: &mcp.ToolCapabilities{ListChanged: false},
		},
	})

	mcp.AddTool(s, &mcp.Tool{
		Name: "shell_run",
		Description: `Execute a shell command and return its output and exit status.

Output is captured in full. The returned run_id can be passed to shell_result later.`,
	}, h.runHandler)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "shell_result",
		Description: "Retrieve the stored result of a previous shell_run by its run_id.",
	}, h.resultHandler)

	return s
}

type runParams struct {
	Command  string `json:"command,omitempty" jsonschema:"the shell command to execute"`
	Pty      bool   `json:"pty,omitempty" jsonschema:"run the command under a pseudo-terminal"`
	Fallback *bool  `json:"fallback,omitempty" jsonschema:"permit silent fallback to pipe mode when no pty is available (default true)"`
	Encoding string `json:"encoding,omitempty" jsonschema:"text encoding of the command's output (IANA name, default utf-8)"`
}

func (h *handler) runHandler(ctx context.Context, req *mcp.CallToolRequest, params runParams) (*mcp.CallToolResult, any, error) {
	if params.Command == "" {
		return errorResult("command is required")
	}

	// There is no terminal on this side of the transport: capture only,
	// tolerate non-zero exits, and report them through the result text.
	overrides := []runner.Option{
		runner.Warn(true),
		runner.OutStream(io.Discard),
		runner.ErrStream(io.Discard),
		runner.Pty(params.Pty),
		runner.Encoding(params.Encoding),
	}
	if params.Fallback != nil {
		overrides = append(overrides, runner.Fallback(*params.Fallback))
	}

	h.mu.Lock()
	res, err := h.runner.Run(params.Command, overrides...)
	h.mu.Unlock()
	if err != nil {
		return errorResult(fmt.Sprintf("Failed to run command: %v", err))
	}

	if err := h.store.Save(&history.Record{
		ID:      res.RunID,
		Command: params.Command,
		Stdout:  res.Stdout,
		Stderr:  res.Stderr,
		Exited:  res.Exited,
		Pty:     res.Pty,
		Ran:     time.Now().UTC(),
	}); err != nil {
		return errorResult(fmt.Sprintf("Failed to store run: %v", err))
	}

	return textResult(fmt.Sprintf("Run: %s\n\n%s", res.RunID, res))
}

type resultParams struct {
	RunID string `json:"run_id" jsonschema:"the run ID returned by shell_run"`
}

func (h *handler) resultHandler(ctx context.Context, req *mcp.CallToolRequest, params resultParams) (*mcp.CallToolResult, any, error) {
	if params.RunID == "" {
		return errorResult("run_id is required")
	}
	rec, err := h.store.Load(params.RunID)
	if err != nil {
		return errorResult(fmt.Sprintf("Failed to load run %s: %v", params.RunID, err))
	}

	res := &runner.Result{
		RunID:  rec.ID,
		Stdout: rec.Stdout,
		Stderr: rec.Stderr,
		Exited: rec.Exited,
		Pty:    rec.Pty,
	}
	return textResult(fmt.Sprintf("Run: %s\nCommand: %s\nRan: %s\n\n%s",
		rec.ID, rec.Command, rec.Ran.Format(time.RFC3339), res))
}

// textResult builds a text-only tool result.
func textResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil, nil
}

// errorResult builds an error tool result.
func errorResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}, nil, nil
}
