package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tuanngd/awxtool/internal/awx"
	"github.com/tuanngd/awxtool/internal/tools"
)

// nopExecutor backs the listing registry; listing never performs requests.
type nopExecutor struct{}

func (nopExecutor) Do(_ context.Context, _ awx.RequestSpec) (*awx.Result, error) {
	return nil, awx.Networkf("no client configured")
}

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the available tools",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg := tools.NewRegistry()
		tools.RegisterAll(reg, nopExecutor{})
		for _, t := range reg.List() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-24s %s\n", t.Name, t.Description)
		}
		return nil
	},
}
