package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"taggen/internal/domain/config"
	"taggen/internal/index"
)

func newTagsCmd() *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "tags [label]",
		Short: "List indexed tags, or inspect a single one",
		Long: `Read the tag index produced by 'taggen generate' and print what it
knows. Without arguments every tag is listed, busiest first. With a
label only that tag is shown, including the posts that declare it.
Labels are matched exactly: PHP and php are different tags.

Examples:
  taggen tags
  taggen tags PHP
  taggen tags --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig()
			if err != nil {
				return err
			}

			st, err := openIndex(cfg.Index.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			if len(args) == 1 {
				return showTag(cmd, st, cfg, args[0], outputJSON)
			}
			return listTags(cmd, st, cfg, outputJSON)
		},
	}

	cmd.Flags().BoolVarP(&outputJSON, "json", "J", false, "Output as JSON")

	return cmd
}

// openIndex 只读打开；文件还不存在时给出能直接照做的提示
func openIndex(path string) (*index.Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("no tag index at %s (run 'taggen generate' first)", path)
	}
	return index.Open(index.OpenOptions{Path: path, ReadOnly: true})
}

func listTags(cmd *cobra.Command, st *index.Store, cfg config.Config, outputJSON bool) error {
	tags, err := st.ListTags()
	if err != nil {
		return fmt.Errorf("failed to list tags: %w", err)
	}

	out := cmd.OutOrStdout()

	if outputJSON {
		data, err := json.MarshalIndent(tags, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if len(tags) == 0 {
		fmt.Fprintln(out, "No tags indexed")
		return nil
	}

	fmt.Fprintf(out, "Found %d tag(s):\n\n", len(tags))
	fmt.Fprintf(out, "%-30s %6s  %s\n", "TAG", "POSTS", "FILE")
	fmt.Fprintln(out, strings.Repeat("-", 60))
	for _, tg := range tags {
		fmt.Fprintf(out, "%-30s %6d  %s\n", tg.Label, tg.Count, tg.Slug+cfg.Output.Extension)
	}
	return nil
}

func showTag(cmd *cobra.Command, st *index.Store, cfg config.Config, label string, outputJSON bool) error {
	tg, err := st.GetTag(label)
	if err != nil {
		if errors.Is(err, index.ErrNotFound) {
			return fmt.Errorf("unknown tag: %q", label)
		}
		return fmt.Errorf("failed to look up tag: %w", err)
	}

	out := cmd.OutOrStdout()

	if outputJSON {
		data, err := json.MarshalIndent(tg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Tag:   %s\n", tg.Label)
	fmt.Fprintf(out, "File:  %s\n", tg.Slug+cfg.Output.Extension)
	fmt.Fprintf(out, "Posts: %d\n", tg.Count)
	for _, p := range tg.Posts {
		fmt.Fprintf(out, "  - %s\n", p)
	}
	return nil
}
