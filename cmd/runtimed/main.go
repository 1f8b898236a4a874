// Command runtimed starts the workflow runtime's HTTP API server.
//
// Usage:
//
//	runtimed [flags]
//
// Flags:
//
//	-addr string
//	    Server address (default ":8080")
//	-db string
//	    Path to the sqlite database file (default "./runtime.db")
//	-max-execution-time duration
//	    Maximum workflow execution time (default 5m)
//	-max-concurrent-executions int
//	    Maximum executions running at once (default 16)
//	-allow-http
//	    Allow plain HTTP requests from http-kind nodes/tools (default false)
//
// The server exposes:
//
//	POST   /api/v1/workflows                       - Save a workflow
//	GET    /api/v1/workflows                        - List workflows
//	POST   /api/v1/workflows/validate                - Validate a workflow
//	GET    /api/v1/workflows/{id}                    - Load a workflow
//	DELETE /api/v1/workflows/{id}                    - Delete a workflow
//	POST   /api/v1/workflows/{id}/execute             - Execute a workflow
//	GET    /api/v1/executions/{id}                    - Get execution status
//	POST   /api/v1/executions/{id}/stop               - Stop a running execution
//	GET    /api/v1/executions/{id}/logs               - Get execution logs
//	GET    /api/v1/executions/{id}/stream             - Stream execution events (websocket)
//	GET    /health, /health/live, /health/ready        - Health checks
//	GET    /metrics                                    - Prometheus metrics
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wovenflow/runtime/internal/bootstrap"
	"github.com/wovenflow/runtime/internal/config"
	"github.com/wovenflow/runtime/internal/eventsink"
	"github.com/wovenflow/runtime/internal/httpserver"
	"github.com/wovenflow/runtime/internal/modelgateway"
	"github.com/wovenflow/runtime/internal/store"
	"github.com/wovenflow/runtime/internal/telemetry"
)

func main() {
	addr := flag.String("addr", ":8080", "server address")
	dbPath := flag.String("db", "./runtime.db", "path to the sqlite database file")
	maxExecutionTime := flag.Duration("max-execution-time", 5*time.Minute, "maximum workflow execution time")
	maxConcurrentExecutions := flag.Int("max-concurrent-executions", 16, "maximum executions running at once")
	allowHTTP := flag.Bool("allow-http", false, "allow plain HTTP requests from http-kind nodes/tools")
	fileToolRoot := flag.String("file-tool-root", ".", "filesystem root the file tool is scoped to")
	flag.Parse()

	cfg := *config.Default()
	cfg.MaxExecutionTime = *maxExecutionTime
	cfg.MaxConcurrentExecutions = *maxConcurrentExecutions
	cfg.AllowHTTP = *allowHTTP

	st, err := store.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	wsSink := eventsink.NewWebSocketSink()

	telemetryProvider, err := telemetry.NewProvider(context.Background(), telemetry.DefaultConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize telemetry: %v\n", err)
		os.Exit(1)
	}

	eng, err := bootstrap.New(st, bootstrap.Options{
		Config: cfg,
		ModelCredentials: modelgateway.Credentials{
			OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
			AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
			GroqAPIKey:      os.Getenv("GROQ_API_KEY"),
			OllamaBaseURL:   os.Getenv("OLLAMA_HOST"),
		},
		FileToolRoot: *fileToolRoot,
		Sink:         wsSink,
		Telemetry:    telemetryProvider,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build runtime: %v\n", err)
		os.Exit(1)
	}

	srvConfig := httpserver.DefaultConfig()
	srvConfig.Address = *addr
	srv := httpserver.New(srvConfig, eng, wsSink)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		fmt.Printf("wovenflow runtime listening on %s\n", *addr)
		fmt.Printf("health:  http://localhost%s/health\n", *addr)
		fmt.Printf("metrics: http://localhost%s/metrics\n", *addr)
		fmt.Println("press Ctrl+C to shut down")
		if err := srv.Start(); err != nil {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	case sig := <-sigChan:
		fmt.Printf("\nreceived signal: %v, shutting down...\n", sig)
		ctx, cancel := context.WithTimeout(context.Background(), srvConfig.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("server stopped")
	}
}
