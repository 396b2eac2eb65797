package cmd

import "github.com/spf13/cobra"

var (
	rootCmd = &cobra.Command{
		Use:   "brokerctl",
		Short: "Admin CLI for managing the hil-broker",
	}
)

func Execute() error {
	return rootCmd.Execute()
}
