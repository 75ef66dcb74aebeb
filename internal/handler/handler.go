// Package handler provides the Lambda handler translating one DNA sequence.
package handler

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/liserjrqlxue/dna2aa/pkg/codon"
	"github.com/liserjrqlxue/dna2aa/pkg/report"
)

// Request is the input of one translation
type Request struct {
	Sequence string `json:"sequence"`
	// Format optional rendering of Protein, flat by default
	Format    string `json:"format,omitempty"`
	Separator string `json:"separator,omitempty"`
}

// Response is the output of one translation.
// Validation problems are reported in Error, not as a Lambda failure.
type Response struct {
	Records []codon.Record `json:"records,omitempty"`
	Protein string         `json:"protein,omitempty"`
	Length  int            `json:"length"`
	Dropped int            `json:"dropped"`
	Error   string         `json:"error,omitempty"`
}

// Handle validates and translates req.Sequence.
// Trailing bases that do not fill a codon are counted in Dropped, not reported as errors.
func Handle(ctx context.Context, req Request) (*Response, error) {
	var raw = strings.TrimSpace(req.Sequence)
	if err := codon.Validate(raw); err != nil {
		slog.WarnContext(ctx, "Invalid sequence", "err", err)
		return &Response{Error: err.Error()}, nil
	}

	var format = req.Format
	if format == "" {
		format = "flat"
	}
	if _, ok := report.Writers[format]; !ok {
		return &Response{Error: "unknown format " + format}, nil
	}

	var seq = codon.Normalize(raw)
	var records = codon.Translate(seq, codon.Standard())

	var buf bytes.Buffer
	if err := report.Write(format, &buf, records, report.Options{Separator: req.Separator}); err != nil {
		return nil, err
	}

	return &Response{
		Records: records,
		Protein: strings.TrimRight(buf.String(), "\n"),
		Length:  len(seq),
		Dropped: codon.Dropped(seq),
	}, nil
}
