// Command subshell runs shell commands with captured, optionally
// pty-backed, output.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/deixis/subshell"
	"github.com/deixis/subshell/internal/config"
	"github.com/deixis/subshell/internal/history"
	shmcp "github.com/deixis/subshell/internal/mcp"
	"github.com/deixis/subshell/internal/runner"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("subshell: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "run":
		err = runMain(args)
	case "mcp":
		err = mcpMain(args)
	case "version":
		fmt.Println(subshell.Version)
	case "help", "-h", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "subshell: unknown command %q\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		var failure *runner.Failure
		if errors.As(err, &failure) {
			// The command itself failed; mirror its exit code.
			log.Print(err)
			os.Exit(failure.Result.Exited)
		}
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: subshell <command> [flags]

Commands:
  run         Execute a shell command and capture its output
  mcp         Start the MCP server
  version     Print the version
  help        Show this help

Use "subshell <command> -h" for command-specific flags.`)
}

// newRunner builds a Runner from the .subshell defaults in the working
// directory.
func newRunner() (*runner.Runner, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("determining working directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return runner.New(cfg.Run.Opts())
}

// --- run ---

func runMain(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	warn := fs.Bool("warn", false, "report a non-zero exit instead of failing")
	hide := fs.String("hide", "", `suppress live output: "out", "err" or "both"`)
	pty := fs.Bool("pty", false, "run the command under a pseudo-terminal")
	fallback := fs.Bool("fallback", true, "permit silent fallback to pipe mode when no pty is available")
	echo := fs.Bool("echo", false, "print the command line before running it")
	encoding := fs.String("encoding", "", "text encoding of the command's output (IANA name)")
	_ = fs.Parse(args)

	if fs.NArg() == 0 {
		return fmt.Errorf("run: no command given")
	}
	command := strings.Join(fs.Args(), " ")

	r, err := newRunner()
	if err != nil {
		return err
	}

	var overrides []runner.Option
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "warn":
			overrides = append(overrides, runner.Warn(*warn))
		case "hide":
			overrides = append(overrides, runner.Hide(*hide))
		case "pty":
			overrides = append(overrides, runner.Pty(*pty))
		case "fallback":
			overrides = append(overrides, runner.Fallback(*fallback))
		case "echo":
			overrides = append(overrides, runner.Echo(*echo))
		case "encoding":
			overrides = append(overrides, runner.Encoding(*encoding))
		}
	})

	_, err = r.Run(command, overrides...)
	return err
}

// --- mcp ---

func mcpMain(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ExitOnError)
	instructions := fs.Bool("instructions", false, "print model instructions and exit")
	httpAddr := fs.String("http", "", "start HTTP server on address (e.g. :9090)")
	_ = fs.Parse(args)

	if *instructions {
		fmt.Print(shmcp.Instructions)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r, err := newRunner()
	if err != nil {
		return err
	}
	store := history.NewLRUStore(5, history.NewDiskStore())
	server := shmcp.NewServer(r, store)

	if *httpAddr != "" {
		return serveHTTP(ctx, server, *httpAddr)
	}
	return server.Run(ctx, &mcpsdk.StdioTransport{})
}

func serveHTTP(ctx context.Context, server *mcpsdk.Server, addr string) error {
	handler := mcpsdk.NewStreamableHTTPHandler(
		func(_ *http.Request) *mcpsdk.Server { return server },
		nil,
	)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		<-ctx.Done()
		_ = httpServer.Close()
	}()

	log.Printf("listening on %s", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
