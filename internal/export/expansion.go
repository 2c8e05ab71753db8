// Package export serializes polynomial expansions for downstream
// regression and quadrature tooling: JSON for structure-preserving
// round trips, CSV for spreadsheet-style coefficient tables.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/polychaos/internal/poly"
)

type ExpansionData struct {
	Dimensions  int              `json:"dimensions"`
	Size        int              `json:"size"`
	Polynomials []PolynomialData `json:"polynomials"`
}

type PolynomialData struct {
	Terms []TermData `json:"terms"`
}

type TermData struct {
	Exponents []int     `json:"exponents"`
	Coeffs    []float64 `json:"coeffs"`
}

// Encode converts an expansion into its serializable form.
func Encode(e poly.Expansion) (ExpansionData, error) {
	if err := e.Validate(); err != nil {
		return ExpansionData{}, err
	}
	data := ExpansionData{
		Dimensions:  e.Dims(),
		Polynomials: make([]PolynomialData, len(e)),
	}
	for i, p := range e {
		if p.Size() > data.Size {
			data.Size = p.Size()
		}
		terms := p.Terms()
		pd := PolynomialData{Terms: make([]TermData, len(terms))}
		for j, t := range terms {
			pd.Terms[j] = TermData{Exponents: t.Exponents, Coeffs: t.Coeffs}
		}
		data.Polynomials[i] = pd
	}
	return data, nil
}

// Decode rebuilds an expansion from its serialized form.
func Decode(data ExpansionData) (poly.Expansion, error) {
	out := make(poly.Expansion, len(data.Polynomials))
	for i, pd := range data.Polynomials {
		terms := make([]poly.Term, len(pd.Terms))
		for j, td := range pd.Terms {
			terms[j] = poly.Term{Exponents: td.Exponents, Coeffs: td.Coeffs}
		}
		p, err := poly.NewFromTerms(data.Dimensions, terms)
		if err != nil {
			return nil, fmt.Errorf("export: polynomial %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

// WriteJSON streams an expansion as indented JSON.
func WriteJSON(w io.Writer, e poly.Expansion) error {
	data, err := Encode(e)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportJSON writes an expansion to a JSON file.
func ExportJSON(path string, e poly.Expansion) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, e)
}

// ImportJSON reads an expansion back from a JSON file.
func ImportJSON(path string) (poly.Expansion, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var data ExpansionData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, err
	}
	return Decode(data)
}

// WriteCSV streams an expansion as a flat coefficient table: one row
// per term per polynomial, with the entry index, per-dimension
// exponents, and coefficient values.
func WriteCSV(w io.Writer, e poly.Expansion) error {
	data, err := Encode(e)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"entry"}
	for d := 0; d < data.Dimensions; d++ {
		header = append(header, fmt.Sprintf("e%d", d))
	}
	if data.Size <= 1 {
		header = append(header, "coeff")
	} else {
		for i := 0; i < data.Size; i++ {
			header = append(header, fmt.Sprintf("c%d", i))
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, pd := range data.Polynomials {
		for _, t := range pd.Terms {
			row := []string{strconv.Itoa(i)}
			for _, ex := range t.Exponents {
				row = append(row, strconv.Itoa(ex))
			}
			for _, c := range t.Coeffs {
				row = append(row, strconv.FormatFloat(c, 'g', -1, 64))
			}
			for j := len(t.Coeffs); j < data.Size; j++ {
				row = append(row, strconv.FormatFloat(t.Coeffs[0], 'g', -1, 64))
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	return cw.Error()
}

// ExportCSV writes an expansion to a CSV file.
func ExportCSV(path string, e poly.Expansion) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteCSV(file, e)
}
