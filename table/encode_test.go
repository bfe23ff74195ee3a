package table

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEncodeText(t *testing.T) {
	var (
		tab = generate(t, "p ^ q")
		str strings.Builder
	)
	if err := EncodeText(&str).EncodeTable(tab); err != nil {
		t.Fatalf("fail to encode: %s", err)
	}
	want := "p q \tp ^ q\n\n" +
		"T T \t  T\n" +
		"T F \t  F\n" +
		"F T \t  F\n" +
		"F F \t  F\n\n"
	if got := str.String(); got != want {
		t.Errorf("results mismatched!\nwant %q\ngot  %q", want, got)
	}
}

func TestEncodeTextNoVariable(t *testing.T) {
	var (
		tab = generate(t, "(1 * 0) + 1")
		str strings.Builder
	)
	if err := EncodeText(&str).EncodeTable(tab); err != nil {
		t.Fatalf("fail to encode: %s", err)
	}
	want := "\t(1 * 0) + 1\n\n\t     T\n\n"
	if got := str.String(); got != want {
		t.Errorf("results mismatched!\nwant %q\ngot  %q", want, got)
	}
}

func TestEncodeCSV(t *testing.T) {
	var (
		tab = generate(t, "p -> q")
		str strings.Builder
	)
	if err := EncodeCSV(&str).EncodeTable(tab); err != nil {
		t.Fatalf("fail to encode: %s", err)
	}
	want := "p,q,p -> q\n" +
		"T,T,T\n" +
		"T,F,F\n" +
		"F,T,T\n" +
		"F,F,T\n"
	if got := str.String(); got != want {
		t.Errorf("results mismatched!\nwant %q\ngot  %q", want, got)
	}
}

func TestEncodeJSON(t *testing.T) {
	var (
		tab = generate(t, "~p")
		str strings.Builder
	)
	if err := EncodeJSON(&str).EncodeTable(tab); err != nil {
		t.Fatalf("fail to encode: %s", err)
	}
	doc := struct {
		Expr  string   `json:"expression"`
		Names []string `json:"variables"`
		Rows  []struct {
			Values []bool `json:"values"`
			Result bool   `json:"result"`
		} `json:"rows"`
	}{}
	if err := json.Unmarshal([]byte(str.String()), &doc); err != nil {
		t.Fatalf("fail to decode output: %s", err)
	}
	if doc.Expr != "~p" {
		t.Errorf("expression mismatched! got %s", doc.Expr)
	}
	if len(doc.Rows) != 2 {
		t.Fatalf("2 rows expected, got %d", len(doc.Rows))
	}
	if doc.Rows[0].Result || !doc.Rows[1].Result {
		t.Errorf("results mismatched! got %t, %t", doc.Rows[0].Result, doc.Rows[1].Result)
	}
}

func TestEncodeXML(t *testing.T) {
	var (
		tab = generate(t, "p")
		str strings.Builder
	)
	if err := EncodeXML(&str).EncodeTable(tab); err != nil {
		t.Fatalf("fail to encode: %s", err)
	}
	got := str.String()
	for _, part := range []string{"<table>", "<expression>p</expression>", `<value name="p">T</value>`, "<result>F</result>"} {
		if !strings.Contains(got, part) {
			t.Errorf("output missing %s:\n%s", part, got)
		}
	}
}
