// Package dataset loads delimited text sources into ordered records and
// coerces named columns to numbers. It knows nothing about drawing; the
// plot package binds it to the chart types.
package dataset

import (
	"math"
	"strconv"
)

// Record is one parsed row, keyed by column header. Records are created
// during parse and treated as immutable afterwards.
type Record map[string]string

// Frame is an ordered sequence of records with the column order of the
// source preserved.
type Frame struct {
	Columns []string
	Records []Record
}

// Row is a record with selected fields coerced to float64.
type Row struct {
	Record Record
	Values map[string]float64
}

// Coercion decides what happens to a row whose numeric field does not
// parse. The original snippets silently propagated NaN into sums and scale
// domains; that behavior is still available as CoerceKeep but has to be
// asked for. The chart variants default to CoerceDrop.
type Coercion int

const (
	// CoerceDrop rejects the whole row.
	CoerceDrop Coercion = iota
	// CoerceZero replaces the bad value with zero.
	CoerceZero
	// CoerceKeep propagates the NaN sentinel unchanged.
	CoerceKeep
)

// Numbers coerces the named fields of every record. Missing fields count
// as unparseable. Row order is preserved.
func (f Frame) Numbers(policy Coercion, fields ...string) []Row {
	var rows []Row
	for _, rec := range f.Records {
		var (
			values = make(map[string]float64, len(fields))
			bad    bool
		)
		for _, name := range fields {
			v, err := strconv.ParseFloat(rec[name], 64)
			if err != nil {
				bad = true
				switch policy {
				case CoerceZero:
					v = 0
				default:
					v = math.NaN()
				}
			}
			values[name] = v
		}
		if bad && policy == CoerceDrop {
			continue
		}
		rows = append(rows, Row{
			Record: rec,
			Values: values,
		})
	}
	return rows
}

// Column collects one coerced field in row order.
func Column(rows []Row, field string) []float64 {
	all := make([]float64, len(rows))
	for i, r := range rows {
		all[i] = r.Values[field]
	}
	return all
}

// Labels collects a raw string field in row order.
func Labels(rows []Row, field string) []string {
	all := make([]string, len(rows))
	for i, r := range rows {
		all[i] = r.Record[field]
	}
	return all
}

// Sum totals each named field across all rows. NaN values are skipped so a
// CoerceKeep pipeline can not poison the totals. Summing the same rows
// twice gives identical results.
func Sum(rows []Row, fields ...string) map[string]float64 {
	totals := make(map[string]float64, len(fields))
	for _, name := range fields {
		var t float64
		for _, r := range rows {
			v := r.Values[name]
			if math.IsNaN(v) {
				continue
			}
			t += v
		}
		totals[name] = t
	}
	return totals
}
