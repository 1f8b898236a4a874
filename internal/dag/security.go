package dag

import (
	"fmt"
	"strings"

	"github.com/wovenflow/runtime/internal/schema"
	"github.com/wovenflow/runtime/internal/security"
)

// ValidateHTTPTargets runs SSRF pre-flight checks over every http-kind
// node's URL, catching an obviously disallowed literal host at
// workflow-save/validate time instead of only at execution dispatch time.
// A URL containing "{{" interpolation is skipped here — its real target
// isn't known until gathered input is applied, and internal/httpclient
// enforces the same policy at dispatch time regardless.
func (g *Graph) ValidateHTTPTargets(cfg schema.Config) error {
	protection := security.NewSSRFProtectionFromConfig(cfg)

	for _, n := range g.nodes {
		if n.Type != schema.NodeTypeHTTP {
			continue
		}
		data, err := schema.AsHTTPData(n.Data)
		if err != nil {
			return fmt.Errorf("node %s: %w", n.ID, err)
		}
		if strings.Contains(data.URL, "{{") {
			continue
		}
		if err := protection.ValidateURL(data.URL); err != nil {
			return fmt.Errorf("node %s: disallowed http target: %w", n.ID, err)
		}
	}
	return nil
}
