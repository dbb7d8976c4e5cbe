package records

import (
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/oneconcern/solo/pkg/model"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// numbers are kept as json.Number, so large timestamps do not lose precision through float64
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Read a list of records, in JSON or YAML format
func Read(r io.Reader, format string) (model.Docs, error) {
	var docs model.Docs
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&docs); err != nil {
			return nil, errors.Wrap(err, "decoding json records")
		}
	case FormatYAML:
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrap(err, "reading yaml records")
		}
		if err = yaml.Unmarshal(b, &docs); err != nil {
			return nil, errors.Wrap(err, "decoding yaml records")
		}
		for i := range docs {
			docs[i] = normalize(docs[i]).(model.Doc)
		}
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
	return docs, nil
}

// ReadFile reads a list of records from a file. When format is empty, it is inferred from the file extension.
func ReadFile(pth, format string) (model.Docs, error) {
	if format == "" {
		var err error
		if format, err = FormatFromPath(pth); err != nil {
			return nil, err
		}
	}
	f, err := os.Open(pth)
	if err != nil {
		return nil, errors.Wrapf(err, "opening records file %s", pth)
	}
	defer f.Close()
	return Read(f, format)
}

// normalize nested YAML maps so they can be encoded as JSON
func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case model.Doc:
		for k, e := range val {
			val[k] = normalize(e)
		}
		return val
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, e := range val {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []interface{}:
		for i, e := range val {
			val[i] = normalize(e)
		}
		return val
	default:
		return v
	}
}
