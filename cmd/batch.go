package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/linkedart/classify"
	"github.com/lehigh-university-libraries/linkedart/document"
	"github.com/lehigh-university-libraries/linkedart/extract"
)

// batchRow is the rendered form of a document.Result.
type batchRow struct {
	Path   string           `json:"path" yaml:"path"`
	ID     string           `json:"id,omitempty" yaml:"id,omitempty"`
	Values map[string][]any `json:"values,omitempty" yaml:"values,omitempty"`
	Error  string           `json:"error,omitempty" yaml:"error,omitempty"`
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		names           []string
		classifications []string
		operator        string
		field           string
		failFast        bool
	)

	cmd := &cobra.Command{
		Use:   "batch <pattern>...",
		Short: "Run extractors over many records",
		Long: `Run a set of extractors over every record matched by the given patterns.

Patterns support ** for recursive matching. Records that cannot be read are
reported with an error and do not stop the run unless --fail-fast is set.

Examples:
  linkedart batch 'records/**/*.json' -e name,accession,dates
  linkedart batch a.json b.json -e images --workers 8 -o yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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
			paths, err := document.Glob(args...)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no files match %v", args)
			}

			opts := a.extractOptions()
			opts.Classifications = classifications
			opts.Operator = op
			opts.Field = field

			b := &document.Batch{
				Extractor: extract.New(table),
				Names:     names,
				Options:   opts,
				Workers:   a.cfg.Workers,
			}
			if err := b.Validate(); err != nil {
				return err
			}

			slog.Debug("running batch", "documents", len(paths), "extractors", names, "workers", a.cfg.Workers)
			results, err := b.Run(cmd.Context(), paths)
			if err != nil {
				return err
			}

			rows := make([]batchRow, 0, len(results))
			failed := 0
			for _, res := range results {
				row := batchRow{Path: res.Path, ID: res.ID}
				if res.Failed() {
					failed++
					row.Error = res.Err.Error()
					if failFast {
						return fmt.Errorf("%s: %w", res.Path, res.Err)
					}
				} else {
					row.Values = make(map[string][]any, len(res.Values))
					for name, values := range res.Values {
						row.Values[name] = a.clean(values)
					}
				}
				rows = append(rows, row)
			}
			if failed > 0 {
				slog.Warn("some documents failed", "failed", failed, "total", len(results))
			}

			if a.cfg.Output == "text" {
				return a.renderBatchText(cmd, rows)
			}
			return a.render(cmd.OutOrStdout(), rows)
		},
	}

	cmd.Flags().StringSliceVarP(&names, "extract", "e", []string{"name"}, "Extractors to run on every record")
	cmd.Flags().StringSliceVarP(&classifications, "classification", "c", nil, "Classification identifiers replacing the extractor defaults")
	cmd.Flags().StringVar(&operator, "operator", "", "How to combine classifications: and, or (default: or for several default terms, and otherwise)")
	cmd.Flags().StringVar(&field, "field", "", "Event field for carried-out-by, timespans and dates (default: produced_by)")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first record that cannot be processed")

	return cmd
}

func (a *app) renderBatchText(cmd *cobra.Command, rows []batchRow) error {
	w := cmd.OutOrStdout()
	for _, row := range rows {
		fmt.Fprintf(w, "== %s\n", row.Path)
		if row.Error != "" {
			fmt.Fprintf(w, "error: %s\n", row.Error)
			continue
		}
		if err := a.renderText(w, row.Values); err != nil {
			return err
		}
	}
	return nil
}
