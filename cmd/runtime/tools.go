package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/wovenflow/runtime/internal/httpclient"
	"github.com/wovenflow/runtime/internal/toolregistry"
)

// cmdTools lists the tools a workflow's tool-kind nodes can invoke.
func cmdTools(args []string) int {
	builder := httpclient.NewBuilder(*loadedCLIConfigOrDefault())
	httpTool, err := toolregistry.NewHTTPTool(builder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tools: %v\n", err)
		return exitUserError
	}

	registry := toolregistry.NewDefaultRegistry(httpTool, ".")
	ids := registry.List()
	sort.Strings(ids)

	for _, id := range ids {
		tool, err := registry.Get(id)
		if err != nil {
			continue
		}
		fmt.Printf("%-12s %-10s %s\n", tool.ID(), tool.Category(), tool.Description())
	}
	return exitSuccess
}
