package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/wovenflow/runtime/internal/dag"
)

func cmdGenerate(args []string) int {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	provider := fs.String("provider", "", "model provider hint passed to the generator")
	output := fs.String("output", "", "path to write the generated workflow JSON to (default stdout)")
	if err := fs.Parse(args); err != nil {
		return exitUserError
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "generate: missing prompt")
		return exitUserError
	}
	prompt := fs.Arg(0)

	var gen generator = offlineGenerator{}
	wf, err := gen.Generate(context.Background(), prompt, *provider)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		return exitUserError
	}
	if err := dag.New(wf.Nodes, wf.Edges).Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "generate: generated workflow failed validation: %v\n", err)
		return exitUserError
	}

	body, err := marshalWorkflow(wf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		return exitUserError
	}

	if *output != "" {
		if err := os.WriteFile(*output, body, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "generate: writing output: %v\n", err)
			return exitUserError
		}
		return exitSuccess
	}

	fmt.Println(string(body))
	return exitSuccess
}
