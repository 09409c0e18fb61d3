package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/rohitraj29/big-data-stack/logger"
	"github.com/rohitraj29/big-data-stack/topology"
)

var (
	clusterName string
	outputDir   string
)

var generateCmd = &cobra.Command{
	Use:   "generate [addresses...]",
	Short: "Generate the cluster inventory from a list of addresses",
	Long: `Assign every given address to the Hadoop service roles and emit the
result: the grouped membership listing on standard output and one host_vars
file per node under <inventory-dir>/host_vars.

Examples:
  # Three-node cluster named hadoop (nodes hadoop0, hadoop1, hadoop2)
  big-data-stack generate 10.0.0.1 10.0.0.2 10.0.0.3

  # Custom cluster name and output root
  big-data-stack generate -c foo -o ./deploy 10.0.0.1 10.0.0.2`,
	Args: cobra.MinimumNArgs(1),
	Run:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&clusterName, "cluster-name", "c", topology.DefaultClusterName, "Cluster name; node names are <cluster-name><ordinal>")
	generateCmd.Flags().StringVarP(&outputDir, "inventory-dir", "o", topology.DefaultOutputDir, "Output root; host_vars files are written below it")
}

func runGenerate(cmd *cobra.Command, args []string) {
	// Log to stderr so stdout carries only the membership listing
	logger.Init("", true)

	// Create run configuration with defaults
	config := topology.DefaultConfig()

	// Override with CLI flags
	config.ClusterName = clusterName
	config.Addresses = args
	config.OutputDir = outputDir

	engine, err := topology.New(config, logger.Warnf)
	if err != nil {
		log.Fatalf("failed to create engine: %v", err)
	}

	inv, err := engine.Build()
	if err != nil {
		log.Fatalf("failed to assign roles: %v", err)
	}

	hostVarsDir, err := config.HostVarsDir()
	if err != nil {
		log.Fatalf("failed to resolve output directory: %v", err)
	}

	fmt.Print(inv.Membership())

	if err := inv.WriteHostVars(hostVarsDir); err != nil {
		log.Fatalf("failed to write host vars: %v", err)
	}
	logger.Infof("wrote %d host vars file(s) to %s", len(inv.AllNodes()), hostVarsDir)
}
