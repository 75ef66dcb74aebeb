package codon

import "sort"

// AminoAcid three-letter amino acid code, or one of the Stop / Unresolved sentinels
type AminoAcid string

const (
	Phe AminoAcid = "Phe"
	Leu AminoAcid = "Leu"
	Ile AminoAcid = "Ile"
	Met AminoAcid = "Met"
	Val AminoAcid = "Val"
	Ser AminoAcid = "Ser"
	Pro AminoAcid = "Pro"
	Thr AminoAcid = "Thr"
	Ala AminoAcid = "Ala"
	Tyr AminoAcid = "Tyr"
	His AminoAcid = "His"
	Gln AminoAcid = "Gln"
	Asn AminoAcid = "Asn"
	Lys AminoAcid = "Lys"
	Asp AminoAcid = "Asp"
	Glu AminoAcid = "Glu"
	Cys AminoAcid = "Cys"
	Trp AminoAcid = "Trp"
	Arg AminoAcid = "Arg"
	Gly AminoAcid = "Gly"

	Stop       AminoAcid = "STOP"
	Unresolved AminoAcid = "UNKNOWN"
)

// AminoAcids canonical order of the 20 standard amino acids
var AminoAcids = []AminoAcid{
	Phe, Leu, Ile, Met, Val, Ser, Pro, Thr, Ala, Tyr,
	His, Gln, Asn, Lys, Asp, Glu, Cys, Trp, Arg, Gly,
}

var shortCode = map[AminoAcid]byte{
	Phe: 'F', Leu: 'L', Ile: 'I', Met: 'M', Val: 'V',
	Ser: 'S', Pro: 'P', Thr: 'T', Ala: 'A', Tyr: 'Y',
	His: 'H', Gln: 'Q', Asn: 'N', Lys: 'K', Asp: 'D',
	Glu: 'E', Cys: 'C', Trp: 'W', Arg: 'R', Gly: 'G',
	Stop: '*',
}

// Short return one-letter code, '*' for Stop and 'X' for anything unresolved
func (aa AminoAcid) Short() byte {
	if c, ok := shortCode[aa]; ok {
		return c
	}
	return 'X'
}

// 密码子表 (标准遗传密码)
var standardCodons = map[string]AminoAcid{
	"TTT": Phe, "TTC": Phe, "TTA": Leu, "TTG": Leu,
	"CTT": Leu, "CTC": Leu, "CTA": Leu, "CTG": Leu,
	"ATT": Ile, "ATC": Ile, "ATA": Ile, "ATG": Met,
	"GTT": Val, "GTC": Val, "GTA": Val, "GTG": Val,
	"TCT": Ser, "TCC": Ser, "TCA": Ser, "TCG": Ser,
	"CCT": Pro, "CCC": Pro, "CCA": Pro, "CCG": Pro,
	"ACT": Thr, "ACC": Thr, "ACA": Thr, "ACG": Thr,
	"GCT": Ala, "GCC": Ala, "GCA": Ala, "GCG": Ala,
	"TAT": Tyr, "TAC": Tyr, "TAA": Stop, "TAG": Stop,
	"CAT": His, "CAC": His, "CAA": Gln, "CAG": Gln,
	"AAT": Asn, "AAC": Asn, "AAA": Lys, "AAG": Lys,
	"GAT": Asp, "GAC": Asp, "GAA": Glu, "GAG": Glu,
	"TGT": Cys, "TGC": Cys, "TGA": Stop, "TGG": Trp,
	"CGT": Arg, "CGC": Arg, "CGA": Arg, "CGG": Arg,
	"AGT": Ser, "AGC": Ser, "AGA": Arg, "AGG": Arg,
	"GGT": Gly, "GGC": Gly, "GGA": Gly, "GGG": Gly,
}

// Table read-only codon -> amino acid mapping.
// A Table is never modified after construction, so one value may be shared
// by any number of goroutines.
type Table struct {
	codons map[string]AminoAcid
}

var standard = newTable(standardCodons)

func newTable(src map[string]AminoAcid) *Table {
	var t = &Table{codons: make(map[string]AminoAcid, len(src))}
	for k, v := range src {
		t.codons[k] = v
	}
	return t
}

// Standard returns the standard genetic code table
func Standard() *Table {
	return standard
}

// Lookup returns the amino acid for an uppercase codon.
// ok is false for anything outside {A,T,C,G}^3.
func (t *Table) Lookup(codon string) (aa AminoAcid, ok bool) {
	aa, ok = t.codons[codon]
	return
}

// Len number of codons
func (t *Table) Len() int {
	return len(t.codons)
}

// Codons returns all codons of the table, sorted
func (t *Table) Codons() []string {
	var codons = make([]string, 0, len(t.codons))
	for k := range t.codons {
		codons = append(codons, k)
	}
	sort.Strings(codons)
	return codons
}
