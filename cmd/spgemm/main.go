// SPDX-License-Identifier: MIT

// Command spgemm benchmarks masked sparse matrix multiplication and the
// graph algorithms built on it.
package main

import (
	"os"

	"github.com/giserh/RedisGraph/cmd/spgemm/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
