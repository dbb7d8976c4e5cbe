package records

import (
	stdjson "encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/oneconcern/solo/pkg/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const tableMaxColWidth = 60

// Write records in the requested format. Columns only apply to the table format and default to the record id.
func Write(w io.Writer, docs model.Docs, format string, columns ...string) error {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(docs, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding json records")
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatYAML:
		b, err := yaml.Marshal(plain(docs))
		if err != nil {
			return errors.Wrap(err, "encoding yaml records")
		}
		_, err = w.Write(b)
		return err
	case FormatTable:
		_, err := fmt.Fprintln(w, table(docs, columns))
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func table(docs model.Docs, columns []string) *uitable.Table {
	if len(columns) == 0 {
		columns = []string{model.OID}
	}
	tbl := uitable.New()
	tbl.MaxColWidth = tableMaxColWidth

	header := make([]interface{}, 0, len(columns))
	for _, c := range columns {
		header = append(header, color.HiBlackString(c))
	}
	tbl.AddRow(header...)

	for _, doc := range docs {
		row := make([]interface{}, 0, len(columns))
		for _, c := range columns {
			row = append(row, cell(doc, c))
		}
		tbl.AddRow(row...)
	}
	return tbl
}

func cell(doc model.Doc, column string) string {
	if _, ok := doc.Get(column); !ok {
		return "-"
	}
	switch column {
	case model.ArticleCreated, model.ArticleUpdated:
		if ms, err := doc.Int64(column); err == nil {
			return time.UnixMilli(ms).UTC().Format(time.RFC3339)
		}
	}
	return doc.String(column)
}

// plain copies docs, replacing json.Number values by native numbers
func plain(v interface{}) interface{} {
	switch val := v.(type) {
	case model.Docs:
		res := make([]interface{}, 0, len(val))
		for _, d := range val {
			res = append(res, plain(d))
		}
		return res
	case model.Doc:
		return plain(map[string]interface{}(val))
	case map[string]interface{}:
		if val == nil {
			return nil
		}
		res := make(map[string]interface{}, len(val))
		for k, e := range val {
			res[k] = plain(e)
		}
		return res
	case []interface{}:
		res := make([]interface{}, 0, len(val))
		for _, e := range val {
			res = append(res, plain(e))
		}
		return res
	case stdjson.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	default:
		return v
	}
}
