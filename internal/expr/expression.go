package expr

import "regexp"

var nodeRefPattern = regexp.MustCompile(`node\.([a-zA-Z0-9_-]+)`)

// ExtractDependencies finds node.<id> references in an expression string.
// The dag package's edge-derived dependencies are authoritative for
// scheduling. Nothing in the runtime calls this: validation does not compare
// an expression's node references against the edges declared for the node.
func ExtractDependencies(expression string) []string {
	var dependencies []string
	seen := make(map[string]bool)

	matches := nodeRefPattern.FindAllStringSubmatch(expression, -1)
	for _, match := range matches {
		if len(match) > 1 {
			nodeID := match[1]
			if !seen[nodeID] {
				dependencies = append(dependencies, nodeID)
				seen[nodeID] = true
			}
		}
	}

	return dependencies
}
