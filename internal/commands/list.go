package commands

import (
	"fmt"

	"github.com/ClementD64/tachiyomi-protobuf-models/internal/config"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/diag"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/schema"
	"github.com/ClementD64/tachiyomi-protobuf-models/internal/source"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// listEntry mirrors one extracted field for the YAML summary
type listEntry struct {
	Rule   string `yaml:"rule"`
	Type   string `yaml:"type"`
	Name   string `yaml:"name"`
	Number int    `yaml:"number"`
}

type listMessage struct {
	Name   string      `yaml:"name"`
	Fields []listEntry `yaml:"fields"`
}

// ListCmd creates the list command
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [source-root]",
		Short: "List the definitions discovered in the Kotlin sources",
		Long: `Runs the same extraction pass as generate, but prints a YAML summary of
the discovered definitions to stdout instead of writing a schema. Useful for
auditing which models and fields the extractor sees.

Diagnostics still stream to stderr and make the command exit non-zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	root := cfg.SourceRoot
	if len(args) > 0 {
		root = args[0]
	}

	sources, err := source.Scan(root, cfg.Extension)
	if err != nil {
		return err
	}

	sink := diag.New(cmd.ErrOrStderr())
	defs, resolver := schema.Build(sources, sink)

	summary := make([]listMessage, 0, len(defs))
	for _, def := range defs {
		msg := listMessage{Name: def.Name}
		for _, e := range def.Entries {
			typ, known := resolver.Resolve(e.Type)
			if !known {
				sink.Reportf("unknown type %s in %s", e.Type, def.Name)
			}
			msg.Fields = append(msg.Fields, listEntry{
				Rule:   e.Rule.String(),
				Type:   typ,
				Name:   e.Name,
				Number: e.Number,
			})
		}
		summary = append(summary, msg)
	}

	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshalling summary: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))

	if sink.Failed() {
		return fmt.Errorf("extraction finished with %d diagnostic(s)", len(sink.Messages()))
	}
	return nil
}
