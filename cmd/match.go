package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/linkedart/classify"
	"github.com/lehigh-university-libraries/linkedart/value"
)

func newMatchCmd(a *app) *cobra.Command {
	var (
		inputFile       string
		source          string
		field           string
		classifications []string
		operator        string
		nested          string
		values          bool
		dedupe          bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Select the resources of a record by classification",
		Long: `Select resources by the vocabulary terms they are classified with.

The resources are the entries of --source in the record, or the record itself
when --source is empty. Identifiers may be given as aat: codes or as http or
https URLs.

Examples:
  # Name entries classified as preferred terms
  linkedart match --source identified_by -c aat:300404670 -i object.json

  # Statements that are dimensions OR brief texts, as values
  linkedart match --source referred_to_by -c aat:300435430,aat:300418049 --operator or --values -i object.json

  # Clearance level classifications of the rights
  linkedart match --source subject_to --nested classifications \
    -c https://data.getty.edu/local/thesaurus/clearance-level -i object.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(classifications) == 0 {
				return fmt.Errorf("at least one --classification is required")
			}
			op, ok := classify.ParseOperator(operator)
			if !ok {
				return fmt.Errorf("unknown operator: %s", operator)
			}
			table, err := a.vocabulary()
			if err != nil {
				return err
			}
			doc, err := readDocument(inputFile, cmd.InOrStdin())
			if err != nil {
				return err
			}

			var resources any = doc
			if source != "" {
				resources = value.Seq(doc, source)
			}

			q := classify.Query{
				Classifications: classifications,
				Field:           field,
				Language:        a.cfg.Language,
				LanguageOptions: a.languageOptions(),
				Operator:        op,
			}

			m := classify.New(table)
			var matches []any
			switch nested {
			case "":
				matches = m.Match(resources, q)
			case "classifications":
				matches = m.ClassificationsByNestedClass(resources, q)
			case "objects":
				matches = m.ObjectsByNestedClass(resources, q)
			default:
				return fmt.Errorf("unknown nested mode: %s (want classifications or objects)", nested)
			}
			if dedupe {
				matches = value.RemoveDuplicatesByID(matches)
			}

			if values {
				found := []any{}
				for _, match := range matches {
					if v, ok := value.ValueOrContent(match); ok {
						found = append(found, v)
					}
				}
				return a.render(cmd.OutOrStdout(), a.clean(found))
			}
			return a.render(cmd.OutOrStdout(), matches)
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file (default: stdin)")
	cmd.Flags().StringVarP(&source, "source", "s", "", "Record field holding the resources (default: the record itself)")
	cmd.Flags().StringVar(&field, "by", classify.ClassifiedAsField, "Classification field: classified_as or classified_by")
	cmd.Flags().StringSliceVarP(&classifications, "classification", "c", nil, "Classification identifiers to match")
	cmd.Flags().StringVar(&operator, "operator", "and", "How to combine classifications: and, or")
	cmd.Flags().StringVar(&nested, "nested", "", "Match nested classifications: classifications or objects")
	cmd.Flags().BoolVar(&values, "values", false, "Print the value or content of each match")
	cmd.Flags().BoolVar(&dedupe, "dedupe", false, "Drop matches whose id was already seen")

	return cmd
}
