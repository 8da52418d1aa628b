package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gobox/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gobox",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gobox v%s\n", version.Version)
		fmt.Println("Stiffened Steel Box Section Design Tool")
		fmt.Println("Based on AS5100.6 (Bridge design - Steel and composite construction)")
		fmt.Printf("Commit: %s  Built: %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
