package cmd

import (
	"fmt"
	"strings"

	"github.com/oneconcern/solo/pkg/comparators"
	"github.com/oneconcern/solo/pkg/dlogger"
	"github.com/oneconcern/solo/pkg/records"
	"github.com/spf13/cobra"
)

type paramsT struct {
	root struct {
		logLevel string
	}
	sort struct {
		by          string
		input       string
		inputFormat string
		format      string
		columns     []string
	}
}

var params = paramsT{}

func addLogLevelFlag(cmd *cobra.Command) string {
	c := "loglevel"
	cmd.PersistentFlags().StringVar(&params.root.logLevel, c, "",
		"The logging level. Levels by increasing order of verbosity: "+strings.Join(dlogger.Levels(), ", ")+" (default "+dlogger.LogLevelWarn+")")
	return c
}

func addSortByFlag(cmd *cobra.Command) string {
	c := "by"
	cmd.Flags().StringVar(&params.sort.by, c, "created",
		fmt.Sprintf("The field to sort by, one of %v", comparators.FieldSpecNames()))
	return c
}

func addInputFlag(cmd *cobra.Command) string {
	c := "input"
	cmd.Flags().StringVarP(&params.sort.input, c, "i", "", `The file holding the records to sort, or "-" for stdin`)
	return c
}

func addInputFormatFlag(cmd *cobra.Command) string {
	c := "input-format"
	cmd.Flags().StringVar(&params.sort.inputFormat, c, "",
		fmt.Sprintf("The format of the input, one of %s, %s. Inferred from the file extension when not set", records.FormatJSON, records.FormatYAML))
	return c
}

func addFormatFlag(cmd *cobra.Command) string {
	c := "format"
	cmd.Flags().StringVarP(&params.sort.format, c, "o", "",
		fmt.Sprintf("The output format, one of %s, %s, %s. Defaults to the input format", records.FormatJSON, records.FormatYAML, records.FormatTable))
	return c
}

func addColumnsFlag(cmd *cobra.Command) string {
	c := "columns"
	cmd.Flags().StringSliceVar(&params.sort.columns, c, nil, "The fields shown by the table format")
	return c
}
