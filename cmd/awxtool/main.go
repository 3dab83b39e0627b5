package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "awxtool",
	Short:   "Function-tool wrappers for the AWX REST API",
	Long:    "awxtool exposes the AWX (Ansible Automation Platform) REST API as named function tools, callable from the command line or served over the Model Context Protocol.",
	Version: version,
}

func init() {
	// Local .env files are a convenience for development setups.
	_ = godotenv.Load()

	v := viper.GetViper()
	v.SetDefault("config", "")

	// Environment variables support: AWXTOOL_CONFIG, ...
	v.SetEnvPrefix("AWXTOOL")
	v.AutomaticEnv()

	rootCmd.PersistentFlags().String("config", v.GetString("config"), "path to a config yaml")
	_ = v.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
