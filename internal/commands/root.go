package commands

import (
	protomodels "github.com/ClementD64/tachiyomi-protobuf-models"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the protomodels CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "protomodels",
		Short: "Recover a protobuf schema from annotated Kotlin models",
		Long: `Protomodels scans a directory of Kotlin model sources for @ProtoNumber
annotations and synthesizes the proto2 schema they imply.

The annotations are the only surviving contract: the models were written for
kotlinx.serialization without a .proto file ever existing. Protomodels audits
every source, reports declarations it could not parse and types it could not
resolve, and only writes the schema when the whole run is clean.`,
		Version: protomodels.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
