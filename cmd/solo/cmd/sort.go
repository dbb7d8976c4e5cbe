package cmd

import (
	"io"

	"github.com/fatih/color"
	"github.com/oneconcern/solo/pkg/comparators"
	"github.com/oneconcern/solo/pkg/dlogger"
	"github.com/oneconcern/solo/pkg/model"
	"github.com/oneconcern/solo/pkg/records"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// sortCmd sorts a list of records
var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Sort articles or tags",
	Long: `Sort a list of articles by creation or update date, or a list of tags by reference count.

Records are ordered from the most recent (or most referenced) to the oldest. Records
comparing as equal keep their input order.

A record with a missing or malformed sort field compares as equal to any other record.
Such faults are logged at the error level, and their number is reported once the sort completes.`,
	Example: `% solo sort --by created --input articles.json
% solo sort --by refcount --input tags.yaml --format table --columns tagTitle,tagReferenceCount
% cat articles.json | solo sort --by updated --input - --input-format json`,
	Run: func(cmd *cobra.Command, args []string) {
		field, err := comparators.FieldSpecFor(params.sort.by)
		if err != nil {
			wrapFatalln("invalid sort field", err)
			return
		}

		logger, err := dlogger.GetLogger(params.root.logLevel)
		if err != nil {
			wrapFatalln("create logger", err)
			return
		}
		defer func() { _ = logger.Sync() }()

		docs, inputFormat, err := readRecords(cmd.InOrStdin())
		if err != nil {
			wrapFatalln("read records", err)
			return
		}

		reg := prometheus.NewRegistry()
		c := comparators.New(
			comparators.WithLogger(logger.Named("sort")),
			comparators.WithRegisterer(reg),
		)
		comparators.SortStable(c, docs, field)

		format := params.sort.format
		if format == "" {
			format = inputFormat
		}
		columns := params.sort.columns
		if len(columns) == 0 {
			columns = defaultColumns(field)
		}
		if err = records.Write(cmd.OutOrStdout(), docs, format, columns...); err != nil {
			wrapFatalln("write records", err)
			return
		}

		faults, err := comparators.FaultCount(reg)
		if err != nil {
			wrapFatalln("count faults", err)
			return
		}
		if faults > 0 {
			_, _ = io.WriteString(cmd.ErrOrStderr(),
				color.YellowString("%v comparisons could not read the %s of a record\n", faults, field.Description))
		}
	},
}

func readRecords(stdin io.Reader) (model.Docs, string, error) {
	input, format := params.sort.input, params.sort.inputFormat
	switch input {
	case "":
		return nil, "", errMissingInput
	case "-":
		if format == "" {
			return nil, "", errMissingInputFormat
		}
		docs, err := records.Read(stdin, format)
		return docs, format, err
	}
	if format == "" {
		var err error
		if format, err = records.FormatFromPath(input); err != nil {
			return nil, "", err
		}
	}
	docs, err := records.ReadFile(input, format)
	return docs, format, err
}

func defaultColumns(field comparators.FieldSpec) []string {
	if field.Name == model.TagReferenceCount {
		return []string{model.OID, model.TagTitle, field.Name}
	}
	return []string{model.OID, model.ArticleTitle, field.Name}
}

func init() {
	addSortByFlag(sortCmd)
	addInputFlag(sortCmd)
	addInputFormatFlag(sortCmd)
	addFormatFlag(sortCmd)
	addColumnsFlag(sortCmd)

	rootCmd.AddCommand(sortCmd)
}
