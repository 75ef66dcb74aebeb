// Package report renders translation records.
// Every writer formats the same []codon.Record, none of them translates.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/liserjrqlxue/dna2aa/pkg/codon"
)

const DefaultSeparator = " "

// Options per-call rendering options
type Options struct {
	Separator string
}

// WriterFunc renders records to w
type WriterFunc func(w io.Writer, records []codon.Record, opt Options) error

// Writers format -> writer
var Writers = map[string]WriterFunc{
	"flat":   WriteFlat,
	"hyphen": writeHyphen,
	"table":  WriteTable,
	"short":  WriteShort,
	"json":   WriteJSON,
}

// Formats registered format names, sorted
func Formats() []string {
	var names = make([]string, 0, len(Writers))
	for k := range Writers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Write dispatches to the writer registered for format
func Write(format string, w io.Writer, records []codon.Record, opt Options) error {
	fn, ok := Writers[format]
	if !ok {
		return fmt.Errorf("unknown format %q (one of %s)", format, strings.Join(Formats(), ", "))
	}
	return fn(w, records, opt)
}

// Flat joins the amino acids of records with sep
func Flat(records []codon.Record, sep string) string {
	var aas = make([]string, len(records))
	for i, r := range records {
		aas[i] = string(r.AminoAcid)
	}
	return strings.Join(aas, sep)
}

// Short one-letter protein string
func Short(records []codon.Record) string {
	var sb strings.Builder
	sb.Grow(len(records))
	for _, r := range records {
		sb.WriteByte(r.AminoAcid.Short())
	}
	return sb.String()
}

// WriteFlat amino acid list joined by opt.Separator, space by default
func WriteFlat(w io.Writer, records []codon.Record, opt Options) error {
	var sep = opt.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	_, err := fmt.Fprintln(w, Flat(records, sep))
	return err
}

func writeHyphen(w io.Writer, records []codon.Record, _ Options) error {
	return WriteFlat(w, records, Options{Separator: "-"})
}

// WriteTable two-column codon -> amino acid report
func WriteTable(w io.Writer, records []codon.Record, _ Options) error {
	for _, r := range records {
		if _, err := fmt.Fprintf(w, "%s -> %s\n", r.Codon, r.AminoAcid); err != nil {
			return err
		}
	}
	return nil
}

// WriteShort one-letter protein string
func WriteShort(w io.Writer, records []codon.Record, _ Options) error {
	_, err := fmt.Fprintln(w, Short(records))
	return err
}

// WriteJSON records as an indented JSON array, [] when empty
func WriteJSON(w io.Writer, records []codon.Record, _ Options) error {
	if records == nil {
		records = []codon.Record{}
	}
	var enc = json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
