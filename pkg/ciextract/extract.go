package ciextract

import (
	"fmt"
	"io"

	"github.com/ukaji3/ciextract-go/pkg/ciextract/models"
	"github.com/ukaji3/ciextract-go/pkg/ciextract/parser"
	"go.uber.org/zap"
)

// Service answers document queries against one loaded grid.
// The grid is loaded once and never modified, so a Service is safe for
// concurrent use.
type Service struct {
	source  string
	grid    *models.Grid
	schema  parser.Schema
	layout  parser.Layout
	loadErr error
	log     *zap.Logger
}

// Open loads the workbook at path. A load failure does not fail Open: it is
// kept on the Service and reported by Err and by every query.
func Open(path string, opts Options) *Service {
	s := newService(path, opts)
	if s.loadErr != nil {
		return s
	}
	g, err := parser.OpenGrid(path, opts.Sheet)
	s.init(g, err)
	return s
}

// OpenReader loads a workbook from r. name identifies the source in errors.
func OpenReader(r io.Reader, name string, opts Options) *Service {
	s := newService(name, opts)
	if s.loadErr != nil {
		return s
	}
	g, err := parser.ReadGrid(r, opts.Sheet)
	s.init(g, err)
	return s
}

// NewService wraps an already loaded grid.
func NewService(g *models.Grid, opts Options) *Service {
	s := newService("", opts)
	if s.loadErr != nil {
		return s
	}
	var err error
	if g == nil {
		err = fmt.Errorf("no grid")
	}
	s.init(g, err)
	return s
}

func newService(source string, opts Options) *Service {
	s := &Service{
		source: source,
		layout: opts.Layout,
		log:    opts.logger(),
	}
	if err := opts.Layout.Validate(); err != nil {
		s.loadErr = &SourceError{Path: source, Err: fmt.Errorf("%w: %v", ErrInvalidLayout, err)}
		s.log.Warn("invalid layout", zap.Error(err))
	}
	return s
}

func (s *Service) init(g *models.Grid, err error) {
	if err != nil {
		s.loadErr = &SourceError{Path: s.source, Err: err}
		s.log.Warn("workbook could not be loaded", zap.String("source", s.source), zap.Error(err))
		return
	}
	s.grid = g
	s.schema = parser.Locate(g, s.layout)

	stats := parser.Stats(g)
	s.log.Info("workbook loaded",
		zap.String("source", s.source),
		zap.String("range", stats.Range),
		zap.Int("rows", stats.Rows),
		zap.Int("cells", stats.NonEmpty),
		zap.Int("stages", len(s.schema.StageNames)),
	)
}

// Err returns the load error, or nil if the workbook loaded.
func (s *Service) Err() error {
	return s.loadErr
}

// Source returns the path or name the workbook was loaded from.
func (s *Service) Source() string {
	return s.source
}

// Stats summarizes the loaded grid.
func (s *Service) Stats() parser.GridStats {
	return parser.Stats(s.grid)
}

// ListGroupingKeys returns the selectable function names, led by an empty
// "no selection" entry. When the source failed to load only that entry is returned.
func (s *Service) ListGroupingKeys() []string {
	if s.loadErr != nil {
		return []string{""}
	}
	return parser.GroupingKeys(s.grid, s.layout)
}

// ListStageNames returns the stage labels from the header row.
func (s *Service) ListStageNames() []string {
	return append([]string(nil), s.schema.StageNames...)
}

// DetailHeaders returns the detail column labels, padded to the layout width.
func (s *Service) DetailHeaders() []string {
	headers := make([]string, s.layout.DetailColumns.Len())
	copy(headers, s.schema.DetailHeaders)
	return headers
}
