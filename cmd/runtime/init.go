package main

import (
	"fmt"
	"os"

	"github.com/wovenflow/runtime/internal/cliconfig"
)

const starterWorkflow = `{
  "name": "starter",
  "description": "a minimal input-to-output workflow",
  "nodes": [
    {"id": "input", "type": "input", "label": "Input", "data": {"name": "input"}},
    {"id": "output", "type": "output", "label": "Output", "data": {}}
  ],
  "edges": [
    {"id": "e1", "source": "input", "target": "output"}
  ]
}
`

// cmdInit creates a configuration document and a starter workflow file if
// they don't already exist, so a first-time user has something to run.
func cmdInit(args []string) int {
	path := cliconfig.DefaultPath()
	s, err := cliconfig.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		return exitUserError
	}

	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		if err := s.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "init: %v\n", err)
			return exitUserError
		}
		fmt.Printf("created configuration: %s\n", path)
	} else {
		fmt.Printf("configuration already exists: %s\n", path)
	}

	const workflowFile = "workflow.json"
	if _, statErr := os.Stat(workflowFile); os.IsNotExist(statErr) {
		if err := os.WriteFile(workflowFile, []byte(starterWorkflow), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "init: %v\n", err)
			return exitUserError
		}
		fmt.Printf("created starter workflow: %s\n", workflowFile)
	} else {
		fmt.Printf("starter workflow already exists: %s\n", workflowFile)
	}

	return exitSuccess
}
