// The ciqctl binary is the operator CLI: local scoring, schema migrations,
// and configuration checks.
package main

import "github.com/culturiq/engine/internal/interfaces/cli"

func main() {
	cli.Execute()
}
