package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/linkedart/classify"
	"github.com/lehigh-university-libraries/linkedart/extract"
)

func newExtractCmd(a *app) *cobra.Command {
	var (
		inputFile       string
		classifications []string
		operator        string
		field           string
		list            bool
	)

	cmd := &cobra.Command{
		Use:   "extract <extractor>...",
		Short: "Run named extractors against a record",
		Long: `Run one or more named extractors against a Linked.Art record.

Input defaults to stdin. Use --list to see the available extractors.

Examples:
  linkedart extract name accession -i object.json
  linkedart extract dimensions -c aat:300266036 -i object.json
  linkedart extract carried-out-by --field encountered_by -i specimen.json
  cat object.json | linkedart extract rights copyright -o text`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				return listExtractors(cmd)
			}
			if len(args) == 0 {
				return fmt.Errorf("no extractors given (see --list)")
			}

			var op classify.Operator
			if operator != "" {
				parsed, ok := classify.ParseOperator(operator)
				if !ok {
					return fmt.Errorf("unknown operator: %s", operator)
				}
				op = parsed
			}
			table, err := a.vocabulary()
			if err != nil {
				return err
			}
			doc, err := readDocument(inputFile, cmd.InOrStdin())
			if err != nil {
				return err
			}

			opts := a.extractOptions()
			opts.Classifications = classifications
			opts.Operator = op
			opts.Field = field

			e := extract.New(table)
			results := make(map[string][]any, len(args))
			for _, name := range args {
				values, err := extract.DefaultCatalog.Run(e, name, doc, opts)
				if err != nil {
					return err
				}
				results[name] = a.clean(values)
			}
			return a.render(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	cmd.Flags().StringSliceVarP(&classifications, "classification", "c", nil, "Classification identifiers replacing the extractor defaults")
	cmd.Flags().StringVar(&operator, "operator", "", "How to combine classifications: and, or (default: or for several default terms, and otherwise)")
	cmd.Flags().StringVar(&field, "field", "", "Event field for carried-out-by, timespans and dates (default: produced_by)")
	cmd.Flags().BoolVar(&list, "list", false, "List available extractors")

	return cmd
}

func listExtractors(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Available extractors:")
	for _, name := range extract.DefaultCatalog.List() {
		entry, _ := extract.DefaultCatalog.Get(name)
		fmt.Fprintf(w, "  %-18s %s\n", name, strings.TrimSpace(entry.Description))
	}
	return nil
}
