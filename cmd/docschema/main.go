// Command docschema validates project documentation against Markdown schemas,
// generates document skeletons and boilerplate files, and serves the same
// operations over the Model Context Protocol.
package main

import (
	"context"
	"os"

	"github.com/custodia-labs/docschema/internal/adapters/driving/cli"
	"github.com/custodia-labs/docschema/internal/logger"
)

func main() {
	cli.SetBootstrap(wire)

	if err := cli.Execute(context.Background()); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
