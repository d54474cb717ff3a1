package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds document metadata flags.
type documentFlags struct {
	name      string
	defendant bool
}

// outputFlags holds output destination flags.
type outputFlags struct {
	path   string
	format string
	base64 bool
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common     commonFlags
	document   documentFlags
	output     outputFlags
	style      string
	dateFormat string
	preview    bool
	version    bool
}

// parseFlags parses command line arguments into renderFlags plus the
// positional arguments (the input file).
func parseFlags(args []string) (*renderFlags, []string, error) {
	fs := flag.NewFlagSet("reviewdoc", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	f := &renderFlags{}
	fs.StringVarP(&f.common.config, "config", "c", "", "config file path or name")
	fs.BoolVarP(&f.common.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&f.common.verbose, "verbose", "v", false, "verbose progress output")

	fs.StringVarP(&f.document.name, "name", "n", "", "document name (default: input filename)")
	fs.BoolVar(&f.document.defendant, "defendant", false, "render the defendant report variant")

	fs.StringVarP(&f.output.path, "output", "o", "", "output file path (default: input name with format extension)")
	fs.StringVarP(&f.output.format, "format", "f", "", "output format: docx, pdf, or html")
	fs.BoolVar(&f.output.base64, "base64", false, "write the base64 transport payload to stdout")

	fs.StringVar(&f.style, "style", "", "embedded CSS style for HTML output")
	fs.StringVar(&f.dateFormat, "date-format", "", "footer date format (tokens or preset: iso, us, long, timestamp)")
	fs.BoolVar(&f.preview, "preview", false, "write the HTML email body preview instead of a document")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
