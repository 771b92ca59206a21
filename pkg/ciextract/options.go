// Package ciextract extracts document status rows from CI extraction workbooks.
package ciextract

import (
	"github.com/ukaji3/ciextract-go/pkg/ciextract/parser"
	"go.uber.org/zap"
)

// DefaultSource is the workbook file name looked up in the working directory.
const DefaultSource = "CI-Extraction.xlsx"

// Options configures loading and querying.
type Options struct {
	// Sheet selects the worksheet. Empty selects the first sheet.
	Sheet string
	// Layout describes the positional sheet convention.
	Layout parser.Layout
	// Logger receives load and query events. If nil, logging is disabled.
	Logger *zap.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Layout: parser.DefaultLayout(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
