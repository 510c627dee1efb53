package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ffigen",
	Short: "ffigen generates Go declarations for foreign C libraries",
	Long:  "ffigen generates Go declarations for foreign C libraries from a resolved declaration description, using layout placeholders for types it cannot spell",
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
