package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"taggen/internal/build"
)

func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Scan posts and write tag index files",
		Long: `Scan every post in the source directory, collect the tags declared in
front matter and write one index file per distinct tag into the output
directory. Files generated on an earlier run whose tag has since
disappeared are removed.

The output directory must already exist; taggen never creates it.

Examples:
  # Defaults: _posts -> tag, both .md
  taggen generate

  # Different layout
  taggen generate --source-dir content/posts --output-dir tags`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig()
			if err != nil {
				return err
			}

			b := &build.Builder{Cfg: cfg, IndexPath: cfg.Index.Path}
			res, err := b.Run(cmd.Context())
			if err != nil {
				return err
			}

			for _, w := range res.Warnings {
				log.Warn().Str("path", w.Path).Msg(w.Msg)
			}
			if len(res.Pruned) > 0 {
				log.Info().Strs("files", res.Pruned).Msg("removed stale tag files")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d tag index files\n", res.Tags)
			return nil
		},
	}
}
