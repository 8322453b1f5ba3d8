// Package script runs a file of semicolon-terminated statements
// against an Interpreter, one at a time: statements are split on ';',
// blank lines and lines starting with '#' are skipped, and a fatal
// error (Alloc or ServerError) aborts the rest of the file while any
// other error is reported and execution continues with the next
// statement.
package script

import (
	"strings"

	"github.com/kbanas/baza/errs"
	"github.com/kbanas/baza/interp"
	"github.com/kbanas/baza/parser"
)

// StatementResult pairs one statement's source text with its outcome.
type StatementResult struct {
	Statement string
	Result    *interp.Result
	Err       error
}

// Split breaks a script's text into trimmed, non-empty, non-comment
// statement bodies, delimited by ';'.
func Split(text string) []string {
	var out []string
	for _, raw := range strings.Split(text, ";") {
		var kept []string
		for _, line := range strings.Split(raw, "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), "#") {
				continue
			}
			kept = append(kept, line)
		}
		stmt := strings.TrimSpace(strings.Join(kept, "\n"))
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}

// Run executes every statement in text against in, stopping early only
// on a fatal error.
func Run(in *interp.Interpreter, text string) []StatementResult {
	var results []StatementResult

	for _, stmt := range Split(text) {
		q, err := parser.Parse(stmt)
		if err != nil {
			results = append(results, StatementResult{Statement: stmt, Err: err})
			continue
		}

		res, err := in.Execute(q)
		results = append(results, StatementResult{Statement: stmt, Result: res, Err: err})

		if err != nil && errs.KindOf(err).Fatal() {
			break
		}
	}

	return results
}
