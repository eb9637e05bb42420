package app

import "strings"

// JoinCommandLine rebuilds a single command-line string from argv-style
// arguments. Arguments containing whitespace, and an empty first argument,
// are wrapped in double quotes. Quotes inside an argument are not escaped,
// so a first argument containing '"' may not split back out; ValidateConfig
// rejects that case.
func JoinCommandLine(args []string) string {
	parts := make([]string, 0, len(args))
	for i, a := range args {
		if strings.ContainsAny(a, " \t\r\n") || (i == 0 && a == "") {
			a = `"` + a + `"`
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
