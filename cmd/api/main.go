package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/minproducer/kulana-cms/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kulana-cms",
		Short: "Kulana CMS API Server",
		Long:  `Kulana CMS serves the configuration API behind the Kulana marketing site and its admin panel.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewAdminCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
