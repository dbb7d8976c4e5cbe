package cmd

type cmdError string

func (e cmdError) Error() string {
	return string(e)
}

const (
	errMissingInput       cmdError = "an input file is required, use --input or set it in the config"
	errMissingInputFormat cmdError = "--input-format is required when reading from stdin"
)
