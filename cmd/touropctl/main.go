package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "touropctl",
		Short:        "Операторские команды туроператора: миграции, отчеты, рассылка сводки",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		migrateCmd(),
		reportCmd(),
		digestCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
