package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tuanngd/awxtool/internal/config"
	"github.com/tuanngd/awxtool/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent tool invocations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(viper.GetString("config"))
		if err != nil {
			return err
		}
		if !cfg.History.Enabled {
			return fmt.Errorf("history is disabled; set history.enabled in the config")
		}
		path := cfg.History.Path
		if path == "" {
			path = history.DbFileName
		}
		st, err := history.Open(path)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		runs, err := st.Recent(historyLimit)
		if err != nil {
			return err
		}
		for _, r := range runs {
			status := "ok"
			if r.Failed {
				status = "failed"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-7s %-24s %-7s %3d  %s\n",
				r.RanAt, status, r.Tool, r.Method, r.StatusCode, r.Path)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 50, "maximum number of runs to show")
}
