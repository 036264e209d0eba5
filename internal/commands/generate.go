package commands

import (
	"fmt"

	"github.com/ClementD64/tachiyomi-protobuf-models/internal/config"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/diag"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/generator"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/generators/proto"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/output"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/schema"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/source"
	"github.com/spf13/cobra"
)

// GenerateCmd creates the generate command
func GenerateCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate <output-file> [source-root]",
		Short: "Generate the proto2 schema from annotated Kotlin sources",
		Long: `Scans every Kotlin source under the source root, extracts @ProtoNumber
declarations, and writes the synthesized proto2 schema to <output-file>.

Diagnostics stream to stderr as they are found. If any declaration failed to
parse or any field type could not be resolved, the schema is NOT written and
the command exits non-zero.

Example:
  protomodels generate tachiyomi.proto
  protomodels generate tachiyomi.proto ../tachiyomi/app/src/main/java/eu/kanade/tachiyomi/data/database/models`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be written without writing it")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, dryRun bool) error {
	outputPath := args[0]

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	root := cfg.SourceRoot
	if len(args) > 1 {
		root = args[1]
	}

	output.Info(fmt.Sprintf("Scanning %s for *%s models", root, cfg.Extension))
	sources, err := source.Scan(root, cfg.Extension)
	if err != nil {
		return err
	}
	output.Verbose(fmt.Sprintf("Scanned %d sources under %s", len(sources), root))

	sink := diag.New(cmd.ErrOrStderr())
	defs, resolver := schema.Build(sources, sink)
	for _, def := range defs {
		output.Step(fmt.Sprintf("%s (%d fields)", def.Name, len(def.Entries)))
	}

	gen := proto.New()
	content, err := gen.Generate(defs, resolver, sink)
	if err != nil {
		return err
	}

	// Persistence is gated on the whole run being clean; partial results are
	// never written alongside unresolved diagnostics.
	if sink.Failed() {
		output.Error(fmt.Sprintf("%d problem(s) found; %s not written", len(sink.Messages()), outputPath))
		return fmt.Errorf("schema generation failed with %d diagnostic(s)", len(sink.Messages()))
	}

	opts := generator.ExecuteOptions{
		DryRun: dryRun,
		Force:  true, // regenerating the schema always overwrites
		Writer: cmd.OutOrStdout(),
	}
	if err := generator.Execute(cmd.Context(), gen.Operations(outputPath, content), opts); err != nil {
		return err
	}

	output.Success(fmt.Sprintf("Generated %d message(s) from %d source(s)", len(defs), len(sources)))
	return nil
}
