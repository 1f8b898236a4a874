// Package expr provides sandboxed expression evaluation for condition,
// transform, loop, and code nodes, built on expr-lang/expr.
//
// # Sandboxing
//
// An expression can only reach the bindings buildEnvironment registers: node
// results, workflow variables, context constants, and a closed set of pure
// string/math/array/date helper functions. No binding in that set can open a
// socket, touch the filesystem, read an environment variable, or sleep —
// the sandbox is the function set itself, not a separate process boundary.
//
// # Surface syntax
//
// Expressions may use a `.length` property instead of len(...) and a
// map(array, item.field) shorthand instead of expr-lang's closure syntax;
// convertSyntax rewrites both before compilation.
//
// # Timeouts
//
// EvaluateValueWithTimeout bounds wall-clock evaluation time. This matters
// because expr-lang's built-in map/filter/reduce have no step budget: an
// expression over an attacker-sized array can otherwise run unbounded.
package expr
