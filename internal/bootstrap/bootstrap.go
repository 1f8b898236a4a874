// Package bootstrap builds a fully wired Engine from configuration,
// shared between cmd/runtime (the CLI) and cmd/runtimed (the HTTP
// daemon) so both binaries construct the dispatcher/tool/model stack
// identically.
package bootstrap

import (
	"fmt"

	"github.com/wovenflow/runtime/internal/config"
	"github.com/wovenflow/runtime/internal/dispatch"
	"github.com/wovenflow/runtime/internal/engine"
	"github.com/wovenflow/runtime/internal/eventsink"
	"github.com/wovenflow/runtime/internal/httpclient"
	"github.com/wovenflow/runtime/internal/modelgateway"
	"github.com/wovenflow/runtime/internal/store"
	"github.com/wovenflow/runtime/internal/telemetry"
	"github.com/wovenflow/runtime/internal/toolregistry"
)

// Options configures the wired Engine. FileToolRoot scopes the file
// tool's filesystem access; ModelCredentials carries provider API keys
// loaded from cliconfig or the process environment. Telemetry is
// optional — when set, its observer is registered on the returned
// Engine so every execution records spans and metrics through it.
type Options struct {
	Config           config.Config
	ModelCredentials modelgateway.Credentials
	FileToolRoot     string
	Sink             eventsink.Sink
	Telemetry        *telemetry.Provider
}

// New builds an Engine backed by st, with the full thirteen-node-type
// dispatcher and the ten built-in tools registered.
func New(st *store.Store, opts Options) (*engine.Engine, error) {
	exprEval := dispatch.NewExprEvaluator(opts.Config.MaxNodeExecutionTime)

	httpBuilder := httpclient.NewBuilder(opts.Config)
	httpClientRegistry := httpclient.NewRegistry()
	httpExec := dispatch.NewHTTPExecutor(httpClientRegistry, httpBuilder)

	httpTool, err := toolregistry.NewHTTPTool(httpBuilder)
	if err != nil {
		return nil, fmt.Errorf("building http tool: %w", err)
	}
	tools := toolregistry.NewDefaultRegistry(httpTool, opts.FileToolRoot)

	gateway := modelgateway.NewGateway(opts.ModelCredentials, opts.Config.MaxNodeExecutionTime)

	registry := dispatch.NewDefaultRegistry(exprEval, tools, gateway, httpExec)

	eng := engine.New(st, registry, opts.Config, opts.Sink)
	if opts.Telemetry != nil {
		eng.RegisterObserver(telemetry.NewTelemetryObserver(opts.Telemetry))
	}
	return eng, nil
}
