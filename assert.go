package hashtab

import "fmt"

// assertf panics with a formatted message if cond is false. It marks
// violations of the table's internal invariants — conditions that should be
// impossible to reach from correct use of the public API.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("hashtab: "+format, args...))
	}
}
