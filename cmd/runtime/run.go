package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wovenflow/runtime/internal/bootstrap"
	"github.com/wovenflow/runtime/internal/cliconfig"
	"github.com/wovenflow/runtime/internal/config"
	"github.com/wovenflow/runtime/internal/dag"
	"github.com/wovenflow/runtime/internal/eventsink"
	"github.com/wovenflow/runtime/internal/modelgateway"
	"github.com/wovenflow/runtime/internal/schema"
	"github.com/wovenflow/runtime/internal/store"
)

func cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	input := fs.String("input", "", "inline JSON input value")
	inputFile := fs.String("input-file", "", "path to a JSON file containing the input value")
	output := fs.String("output", "", "path to write the execution result JSON to (default stdout)")
	verbose := fs.Bool("verbose", false, "print live node/execution events to stderr")
	if err := fs.Parse(args); err != nil {
		return exitUserError
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "run: missing workflow file")
		return exitUserError
	}
	workflowFile := fs.Arg(0)

	body, err := os.ReadFile(workflowFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		return exitUserError
	}

	var wf schema.Workflow
	if err := json.Unmarshal(body, &wf); err != nil {
		fmt.Fprintf(os.Stderr, "run: parsing workflow: %v\n", err)
		return exitUserError
	}

	graph := dag.New(wf.Nodes, wf.Edges)
	if err := graph.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "run: workflow failed validation: %v\n", err)
		return exitUserError
	}
	runConfig := loadedCLIConfigOrDefault()
	if err := graph.ValidateHTTPTargets(*runConfig); err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		return exitUserError
	}

	inputValue, code, err := resolveInput(*input, *inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		return code
	}

	st, err := store.Open(":memory:")
	if err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		return exitUserError
	}
	defer st.Close()

	if err := st.CreateWorkflow(context.Background(), &wf); err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		return exitUserError
	}

	sink := eventsink.NewChannelSink(256)
	eng, err := bootstrap.New(st, bootstrap.Options{
		Config:           *runConfig,
		ModelCredentials: loadedModelCredentials(),
		FileToolRoot:     ".",
		Sink:             sink,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		return exitUserError
	}

	if *verbose {
		go printEvents(sink)
	}

	exec, err := eng.ExecuteWorkflow(context.Background(), wf.ID, inputValue)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		return exitUserError
	}

	final, err := waitForTerminalExecution(st, exec.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		return exitExecFailed
	}

	result, err := json.MarshalIndent(final, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		return exitExecFailed
	}

	if *output != "" {
		if err := os.WriteFile(*output, result, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "run: writing output: %v\n", err)
			return exitExecFailed
		}
	} else {
		fmt.Println(string(result))
	}

	if final.Status == schema.ExecutionError {
		return exitExecFailed
	}
	return exitSuccess
}

func resolveInput(inline, file string) (interface{}, int, error) {
	var raw []byte
	switch {
	case inline != "" && file != "":
		return nil, exitUserError, fmt.Errorf("--input and --input-file are mutually exclusive")
	case inline != "":
		raw = []byte(inline)
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, exitUserError, err
		}
		raw = b
	default:
		return nil, exitSuccess, nil
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, exitUserError, fmt.Errorf("parsing input: %w", err)
	}
	return value, exitSuccess, nil
}

func waitForTerminalExecution(st *store.Store, executionID string) (*schema.Execution, error) {
	deadline := time.Now().Add(5 * time.Minute)
	for time.Now().Before(deadline) {
		exec, err := st.GetExecution(context.Background(), executionID)
		if err != nil {
			return nil, err
		}
		switch exec.Status {
		case schema.ExecutionCompleted, schema.ExecutionError, schema.ExecutionStopped:
			return exec, nil
		}
		time.Sleep(20 * time.Millisecond)
	}
	return nil, fmt.Errorf("execution %s did not reach a terminal status in time", executionID)
}

func printEvents(sink *eventsink.ChannelSink) {
	for evt := range sink.Events() {
		fmt.Fprintf(os.Stderr, "[%s] %s %v\n", evt.Timestamp.Format(time.RFC3339), evt.Type, evt.Data)
	}
}

func loadedCLIConfigOrDefault() *config.Config {
	cfg := config.Default()
	s, err := loadCLIConfigStore()
	if err != nil {
		return cfg
	}
	if v := s.Get(cliconfig.KeyMaxConcurrentExecution); v != nil {
		if n, ok := v.(int); ok {
			cfg.MaxConcurrentExecutions = n
		}
	}
	cfg.AllowHTTP = true // a locally invoked CLI run is trusted the way the teacher's Development config is
	return cfg
}

func loadedModelCredentials() modelgateway.Credentials {
	creds := modelgateway.Credentials{
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		GroqAPIKey:      os.Getenv("GROQ_API_KEY"),
		OllamaBaseURL:   os.Getenv("OLLAMA_HOST"),
	}
	s, err := loadCLIConfigStore()
	if err != nil {
		return creds
	}
	if v := s.APIKey("openai"); v != "" {
		creds.OpenAIAPIKey = v
	}
	if v := s.APIKey("anthropic"); v != "" {
		creds.AnthropicAPIKey = v
	}
	if v := s.APIKey("groq"); v != "" {
		creds.GroqAPIKey = v
	}
	if v := s.Get(cliconfig.KeyOllamaHost); v != nil {
		if host, ok := v.(string); ok && host != "" {
			creds.OllamaBaseURL = host
		}
	}
	return creds
}
