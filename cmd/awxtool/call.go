package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call <tool> [params-json]",
	Short: "Invoke a tool by name with JSON parameters",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		var params json.RawMessage
		if len(args) == 2 {
			params = json.RawMessage(args[1])
		}
		out, err := a.reg.Invoke(ctx, args[0], params)
		if err != nil {
			return err
		}
		enc, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}
