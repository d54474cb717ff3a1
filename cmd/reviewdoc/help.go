package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// printUsage writes the command usage and flag help to stderr.
func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `reviewdoc renders legal research review results into documents.

Usage:
  reviewdoc [flags] <input.md>
  reviewdoc [flags] -        (read markdown from stdin)

Examples:
  reviewdoc --format docx findings.md
  reviewdoc --format pdf --defendant -o review.pdf findings.md
  reviewdoc --format html --style plain findings.md
  reviewdoc --base64 --format docx findings.md | attach-to-email
  reviewdoc --preview findings.md

Flags:
%s`, fs.FlagUsages())
}
