package codon

// Record one translated triplet
type Record struct {
	Codon     string    `json:"codon"`
	AminoAcid AminoAcid `json:"aminoAcid"`
}

// Translate translates seq in reading frame 0 with table.
//
// seq must already be validated and uppercased, Translate does not check it.
// Every complete triplet produces one Record, including STOP codons, which do
// not end the scan. The trailing 1 or 2 bases of a sequence whose length is
// not a multiple of 3 are dropped.
func Translate(seq string, table *Table) []Record {
	var records = make([]Record, 0, len(seq)/3)
	for i := 0; i+3 <= len(seq); i += 3 {
		var codon = seq[i : i+3]
		aa, ok := table.Lookup(codon)
		if !ok {
			aa = Unresolved
		}
		records = append(records, Record{Codon: codon, AminoAcid: aa})
	}
	return records
}

// AminoAcidsOf returns the amino acid column of records
func AminoAcidsOf(records []Record) []AminoAcid {
	var aas = make([]AminoAcid, len(records))
	for i, r := range records {
		aas[i] = r.AminoAcid
	}
	return aas
}

// Dropped number of trailing bases Translate leaves out
func Dropped(seq string) int {
	return len(seq) % 3
}
