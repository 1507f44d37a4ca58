package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/reportdeck/cli"
)

func main() {
	cobra.CheckErr(cli.NewCLI().ExecuteContext(context.Background()))
}
