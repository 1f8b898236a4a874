package expr

import (
	"regexp"
	"strings"
)

// convertSyntax rewrites the runtime's surface expression syntax into
// expr-lang syntax, so authors can write `item.tags.length` and `map(xs,
// item.age * 2)` without knowing expr-lang spells these len(...) and
// map(xs, {#.age * 2}).
func convertSyntax(expression string) string {
	lengthRe := regexp.MustCompile(`(\w+(?:\.\w+|\[\d+\])*?)\.length\b`)
	expression = lengthRe.ReplaceAllString(expression, "len($1)")

	expression = convertMapSyntax(expression)

	return expression
}

// convertMapSyntax converts map(array, expr) calls using `item` into
// expr-lang's closure syntax map(array, {#...}).
func convertMapSyntax(expression string) string {
	mapRe := regexp.MustCompile(`map\s*\(\s*([^,]+),\s*(.+?)\s*\)`)

	for {
		matches := mapRe.FindStringSubmatch(expression)
		if matches == nil {
			break
		}

		fullMatch := matches[0]
		arrayExpr := strings.TrimSpace(matches[1])
		itemExpr := strings.TrimSpace(matches[2])

		closureExpr := itemExpr
		closureExpr = regexp.MustCompile(`\bitem\.`).ReplaceAllString(closureExpr, "#.")
		closureExpr = regexp.MustCompile(`\bitem\b`).ReplaceAllString(closureExpr, "#")

		newMapCall := "map(" + arrayExpr + ", {" + closureExpr + "})"
		expression = strings.Replace(expression, fullMatch, newMapCall, 1)
	}

	return expression
}
