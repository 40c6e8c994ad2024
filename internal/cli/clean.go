package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"taggen/internal/build"
	"taggen/internal/index"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove every generated tag file and reset the index",
		Long: `Delete all tag files recorded in the index and drop the index records
themselves. Files in the output directory that taggen did not generate
are left alone.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig()
			if err != nil {
				return err
			}

			if _, statErr := os.Stat(cfg.Index.Path); os.IsNotExist(statErr) {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to clean")
				return nil
			}

			st, err := index.Open(index.OpenOptions{Path: cfg.Index.Path})
			if err != nil {
				return fmt.Errorf("failed to open index: %w", err)
			}
			defer st.Close()

			recorded, err := st.Outputs()
			if err != nil {
				return fmt.Errorf("failed to read outputs manifest: %w", err)
			}

			// Prune 不带本轮产物，相当于把清单里的文件全删掉
			removed, err := build.Prune(cfg.Output.Dir, recorded, nil)
			if err != nil {
				return err
			}
			if err := st.Drop(); err != nil {
				return fmt.Errorf("failed to reset index: %w", err)
			}

			log.Debug().Strs("files", removed).Msg("cleaned tag files")
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d tag index files\n", len(removed))
			return nil
		},
	}
}
