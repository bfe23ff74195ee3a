package csv

import (
	"strings"
	"testing"
)

func TestWriter(t *testing.T) {
	tests := []struct {
		Record []string
		Want   string
	}{
		{
			Record: []string{"p", "q", "p ^ q"},
			Want:   "p,q,p ^ q\n",
		},
		{
			Record: []string{"a,b", "c"},
			Want:   "\"a,b\",c\n",
		},
		{
			Record: []string{`say "no"`, "x"},
			Want:   "\"say \"\"no\"\"\",x\n",
		},
		{
			Record: []string{" padded", "x"},
			Want:   "\" padded\",x\n",
		},
	}
	for _, c := range tests {
		var str strings.Builder
		w := NewWriter(&str)
		if err := w.Write(c.Record); err != nil {
			t.Errorf("%v: fail to write: %s", c.Record, err)
			continue
		}
		w.Flush()
		if got := str.String(); got != c.Want {
			t.Errorf("%v: results mismatched! want %q, got %q", c.Record, c.Want, got)
		}
	}
}

func TestReader(t *testing.T) {
	input := "p ^ q,contingent\n\"a,b\",x\n\"say \"\"no\"\"\",y\n"
	want := [][]string{
		{"p ^ q", "contingent"},
		{"a,b", "x"},
		{`say "no"`, "y"},
	}
	rs := NewReader(strings.NewReader(input))
	all, err := rs.ReadAll()
	if err != nil {
		t.Fatalf("fail to read: %s", err)
	}
	if len(all) != len(want) {
		t.Fatalf("%d records expected, got %d", len(want), len(all))
	}
	for i := range want {
		if len(all[i]) != len(want[i]) {
			t.Errorf("record %d: %d fields expected, got %d", i, len(want[i]), len(all[i]))
			continue
		}
		for j := range want[i] {
			if all[i][j] != want[i][j] {
				t.Errorf("record %d, field %d: want %q, got %q", i, j, want[i][j], all[i][j])
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	records := [][]string{
		{"p -> q", "tautology"},
		{"p ^ ~p", "contradiction"},
		{"with,comma", `with "quote"`},
	}
	var str strings.Builder
	if err := NewWriter(&str).WriteAll(records); err != nil {
		t.Fatalf("fail to write: %s", err)
	}
	all, err := NewReader(strings.NewReader(str.String())).ReadAll()
	if err != nil {
		t.Fatalf("fail to read: %s", err)
	}
	if len(all) != len(records) {
		t.Fatalf("%d records expected, got %d", len(records), len(all))
	}
	for i := range records {
		for j := range records[i] {
			if all[i][j] != records[i][j] {
				t.Errorf("record %d, field %d: want %q, got %q", i, j, records[i][j], all[i][j])
			}
		}
	}
}
