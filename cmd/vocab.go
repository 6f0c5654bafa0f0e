package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/linkedart/vocab"
)

func newVocabCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Inspect and manage vocabulary tables",
		Long: `Inspect the effective vocabulary table and manage user tables.

The effective table is the bundled table, with the table named by --vocab
and then the file named by --vocab-file layered over it. User tables live in
~/.linkedart/vocab.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List term names and their identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.vocabulary()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, name := range slices.Sorted(maps.Keys(table.Terms)) {
				fmt.Fprintf(w, "%-26s %s\n", name, table.Terms[name])
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "languages",
		Short: "List language codes and their identifiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.vocabulary()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, code := range slices.Sorted(maps.Keys(table.Languages)) {
				fmt.Fprintf(w, "%-4s %s\n", code, table.Languages[code])
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "normalize <id>...",
		Short: "Show the textual forms of vocabulary identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.vocabulary()
			if err != nil {
				return err
			}
			rows := make([]map[string]string, 0, len(args))
			for _, id := range args {
				row := map[string]string{
					"id":        id,
					"toggled":   vocab.NormalizeAATID(id),
					"canonical": vocab.CanonicalAATID(id),
					"short":     vocab.ShortAATID(id),
				}
				if name, ok := table.TermName(id); ok {
					row["term"] = name
				}
				rows = append(rows, row)
			}
			return a.render(cmd.OutOrStdout(), rows)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "language <tag>...",
		Short: "Resolve language tags to identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.vocabulary()
			if err != nil {
				return err
			}
			rows := make([]map[string]string, 0, len(args))
			for _, tag := range args {
				id := table.NormalizeLanguageID(tag, nil)
				row := map[string]string{"tag": tag, "id": id}
				if code, ok := table.LookupISOFromAAT(id); ok {
					row["iso"] = code
				}
				rows = append(rows, row)
			}
			return a.render(cmd.OutOrStdout(), rows)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective table",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.vocabulary()
			if err != nil {
				return err
			}
			return a.render(cmd.OutOrStdout(), table)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "tables",
		Short: "List saved user tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := vocab.ListUser()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(names) == 0 {
				fmt.Fprintln(w, "No user tables found.")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(w, name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "save <name>",
		Short: "Save the effective table as a user table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.vocabulary()
			if err != nil {
				return err
			}
			saved := vocab.Merge(table, &vocab.Table{Name: args[0]})
			if err := saved.Validate(); err != nil {
				return err
			}
			if err := saved.Save(); err != nil {
				return err
			}
			path, _ := vocab.TablePath(saved.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
			return nil
		},
	})

	return cmd
}
