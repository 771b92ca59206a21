package ciextract

import (
	"errors"
	"fmt"

	"github.com/ukaji3/ciextract-go/pkg/ciextract/models"
	"github.com/ukaji3/ciextract-go/pkg/ciextract/parser"
	"go.uber.org/zap"
)

// Query returns the documents of function whose selected stages carry a
// recognized marker. Stage names missing from the header row are dropped.
// Errors are *SourceError, ErrKeyNotFound or *ExtractionError; a valid
// query with no matches returns StatusEmpty and no error.
func (s *Service) Query(function string, stages []string) (res *models.Result, err error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}

	component := "schema"
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = NewExtractionError(function, component, fmt.Errorf("panic: %v", r))
		}
		if err != nil {
			s.log.Debug("query failed", zap.String("function", function), zap.Error(err))
		}
	}()

	cols, names := s.schema.ResolveStages(stages)

	component = "block"
	block, ok := parser.FindBlock(s.grid, s.layout, function)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, function)
	}

	component = "filter"
	matched := parser.FilterRows(s.grid, s.layout, block, cols)

	component = "project"
	records := parser.Project(s.grid, s.layout, matched)

	res = &models.Result{
		Function:      function,
		Block:         block,
		DetailHeaders: s.DetailHeaders(),
		Stages:        names,
		Status:        models.StatusMatched,
		Records:       records,
	}
	if len(records) == 0 {
		res.Status = models.StatusEmpty
		res.Records = []models.DisplayRecord{parser.SentinelRecord(s.layout, len(names), MsgNoMatches)}
	}

	s.log.Debug("query",
		zap.String("function", function),
		zap.Int("stages", len(names)),
		zap.Int("block_rows", block.Len()),
		zap.Int("matches", len(matched)),
	)
	return res, nil
}

// GetMatchingDocuments answers a query and never fails: every error is
// folded into a single sentinel record. The result always has at least one
// record and every record has the same width.
func (s *Service) GetMatchingDocuments(function string, stages []string) []models.DisplayRecord {
	return s.Table(function, stages).Records
}

// Table answers a query with column headers suitable for a renderer.
func (s *Service) Table(function string, stages []string) models.Table {
	res, err := s.Query(function, stages)
	if err != nil {
		var extErr *ExtractionError
		if errors.As(err, &extErr) {
			s.log.Error("document extraction failed", zap.String("function", function), zap.Error(err))
		}
		names := s.schema.SelectedStages(stages)
		return models.Table{
			Columns: models.Columns(s.DetailHeaders(), names),
			Records: []models.DisplayRecord{parser.SentinelRecord(s.layout, len(names), displayMessage(err))},
			Error:   err.Error(),
		}
	}
	return models.Table{
		Columns: models.Columns(res.DetailHeaders, res.Stages),
		Records: res.Records,
	}
}
