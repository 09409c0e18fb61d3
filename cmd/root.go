package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "big-data-stack",
	Short: "Hadoop virtual cluster inventory generator",
	Long: `Generates the Ansible inventory for a Hadoop virtual cluster: the group
membership for every service role and one host_vars file per node.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags can be added here
}
