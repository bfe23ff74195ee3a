package table

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/midbel/taut/csv"
)

type Encoder interface {
	EncodeTable(*Table) error
}

func Label(v bool) string {
	if v {
		return "T"
	}
	return "F"
}

type textEncoder struct {
	writer io.Writer
}

// EncodeText renders the historical terminal layout: variable names
// then the expression on the header line, one line per assignment
// with the result right aligned under the expression at half its
// width.
func EncodeText(w io.Writer) Encoder {
	return &textEncoder{
		writer: w,
	}
}

func (e *textEncoder) EncodeTable(tab *Table) error {
	for _, n := range tab.Names {
		if _, err := fmt.Fprintf(e.writer, "%s ", n); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(e.writer, "\t%s\n\n", tab.Expr); err != nil {
		return err
	}
	width := (len(tab.Expr) + 1) / 2
	for _, row := range tab.Rows {
		for _, v := range row.Values {
			if _, err := fmt.Fprintf(e.writer, "%s ", Label(v)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(e.writer, "\t%*s\n", width, Label(row.Result)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(e.writer)
	return err
}

type csvEncoder struct {
	writer io.Writer
	comma  byte
}

func EncodeCSV(w io.Writer) Encoder {
	return &csvEncoder{
		writer: w,
		comma:  ',',
	}
}

func (e *csvEncoder) EncodeTable(tab *Table) error {
	writer := csv.NewWriter(e.writer)
	writer.Comma = e.comma

	header := append([]string{}, tab.Names...)
	header = append(header, tab.Expr)
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, row := range tab.Rows {
		record := make([]string, 0, len(row.Values)+1)
		for _, v := range row.Values {
			record = append(record, Label(v))
		}
		record = append(record, Label(row.Result))
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Err()
}

type jsonEncoder struct {
	writer io.Writer
}

func EncodeJSON(w io.Writer) Encoder {
	return &jsonEncoder{
		writer: w,
	}
}

func (e *jsonEncoder) EncodeTable(tab *Table) error {
	type jsonRow struct {
		Values []bool `json:"values"`
		Result bool   `json:"result"`
	}
	doc := struct {
		Expr  string    `json:"expression"`
		Names []string  `json:"variables"`
		Rows  []jsonRow `json:"rows"`
	}{
		Expr:  tab.Expr,
		Names: tab.Names,
	}
	for _, row := range tab.Rows {
		doc.Rows = append(doc.Rows, jsonRow(row))
	}
	enc := json.NewEncoder(e.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

type xmlEncoder struct {
	writer io.Writer
}

func EncodeXML(w io.Writer) Encoder {
	return &xmlEncoder{
		writer: w,
	}
}

func (e *xmlEncoder) EncodeTable(tab *Table) error {
	type xmlValue struct {
		Name  string `xml:"name,attr"`
		Value string `xml:",chardata"`
	}
	type xmlRow struct {
		Values []xmlValue `xml:"value"`
		Result string     `xml:"result"`
	}
	doc := struct {
		XMLName xml.Name `xml:"table"`
		Expr    string   `xml:"expression"`
		Rows    []xmlRow `xml:"rows>row"`
	}{
		Expr: tab.Expr,
	}
	for _, row := range tab.Rows {
		var xr xmlRow
		for i, v := range row.Values {
			xr.Values = append(xr.Values, xmlValue{
				Name:  tab.Names[i],
				Value: Label(v),
			})
		}
		xr.Result = Label(row.Result)
		doc.Rows = append(doc.Rows, xr)
	}
	enc := xml.NewEncoder(e.writer)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := fmt.Fprintln(e.writer)
	return err
}
