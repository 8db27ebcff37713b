package tabular_test

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/shapestone/shape-tabular/pkg/tabular"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantColumns []string
		wantRecords []tabular.Record
	}{
		{
			name:        "header only",
			input:       "name,age",
			wantColumns: []string{"name", "age"},
			wantRecords: []tabular.Record{},
		},
		{
			name:        "simple",
			input:       "name,age\nAlice,30\nBob,25",
			wantColumns: []string{"name", "age"},
			wantRecords: []tabular.Record{
				{"name": "Alice", "age": "30"},
				{"name": "Bob", "age": "25"},
			},
		},
		{
			name:        "CRLF and trailing newline",
			input:       "name,age\r\nAlice,30\r\n",
			wantColumns: []string{"name", "age"},
			wantRecords: []tabular.Record{{"name": "Alice", "age": "30"}},
		},
		{
			name:        "blank line skipped",
			input:       "a,b\n\n1,2",
			wantColumns: []string{"a", "b"},
			wantRecords: []tabular.Record{{"a": "1", "b": "2"}},
		},
		{
			name:        "headers trimmed",
			input:       "  id , label \n1,x",
			wantColumns: []string{"id", "label"},
			wantRecords: []tabular.Record{{"id": "1", "label": "x"}},
		},
		{
			name:        "quoted values",
			input:       "city,quote\n\"Paris, FR\",\"He said \"\"hi\"\"\"",
			wantColumns: []string{"city", "quote"},
			wantRecords: []tabular.Record{{"city": "Paris, FR", "quote": `He said "hi"`}},
		},
		{
			name:        "ragged short row",
			input:       "a,b,c\n1,2",
			wantColumns: []string{"a", "b", "c"},
			wantRecords: []tabular.Record{{"a": "1", "b": "2", "c": ""}},
		},
		{
			name:        "ragged long row",
			input:       "a,b\n1,2,3",
			wantColumns: []string{"a", "b"},
			wantRecords: []tabular.Record{{"a": "1", "b": "2"}},
		},
		{
			name:        "duplicate column later value wins",
			input:       "k,k,v\n1,2,3",
			wantColumns: []string{"k", "k", "v"},
			wantRecords: []tabular.Record{{"k": "2", "v": "3"}},
		},
		{
			name:        "whitespace-only line is a record",
			input:       "a,b\n   \n1,2",
			wantColumns: []string{"a", "b"},
			wantRecords: []tabular.Record{{"a": "", "b": ""}, {"a": "1", "b": "2"}},
		},
		{
			name:        "values stay strings",
			input:       "n,d\n007,2024-01-02",
			wantColumns: []string{"n", "d"},
			wantRecords: []tabular.Record{{"n": "007", "d": "2024-01-02"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := tabular.Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !reflect.DeepEqual(table.Columns, tt.wantColumns) {
				t.Errorf("Columns = %q, want %q", table.Columns, tt.wantColumns)
			}
			if !reflect.DeepEqual(table.Records, tt.wantRecords) {
				t.Errorf("Records = %v, want %v", table.Records, tt.wantRecords)
			}
		})
	}
}

func TestDecode_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n", "\r\n\t\r\n"} {
		t.Run(strings.ReplaceAll(input, "\n", `\n`), func(t *testing.T) {
			table, err := tabular.Decode(input)
			if !errors.Is(err, tabular.ErrEmptyInput) {
				t.Errorf("Decode(%q) error = %v, want ErrEmptyInput", input, err)
			}
			if table != nil {
				t.Errorf("Decode(%q) returned non-nil table", input)
			}
		})
	}
}

// TestDecode_RecordCount checks that N data lines give N records keyed by the header.
func TestDecode_RecordCount(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("x,y,z\n")
	const n = 250
	for i := 0; i < n; i++ {
		sb.WriteString("1,\"2,2\",3\n")
	}

	table, err := tabular.Decode(sb.String())
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if table.Len() != n {
		t.Fatalf("Len() = %d, want %d", table.Len(), n)
	}
	for i, rec := range table.Records {
		if len(rec) != 3 {
			t.Fatalf("record %d has %d keys, want 3", i, len(rec))
		}
		for _, c := range table.Columns {
			if _, ok := rec[c]; !ok {
				t.Fatalf("record %d missing column %q", i, c)
			}
		}
	}
}

func TestDecode_LineEndingsEquivalent(t *testing.T) {
	lf, err := tabular.Decode("a,b\n1,2\n3,4")
	if err != nil {
		t.Fatal(err)
	}
	crlf, err := tabular.Decode("a,b\r\n1,2\r\n3,4")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(lf, crlf) {
		t.Errorf("LF table %v != CRLF table %v", lf, crlf)
	}
}

func TestDecode_Idempotent(t *testing.T) {
	input := "a,\"b,c\",d\n1,2,3\n\n4,\"5\"\"\",6"
	first, err := tabular.Decode(input)
	if err != nil {
		t.Fatal(err)
	}
	second, err := tabular.Decode(input)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Decode is not idempotent: %v vs %v", first, second)
	}
}

func TestDecode_Concurrent(t *testing.T) {
	input := "a,b\n1,\"x,y\"\n2,z"
	want, err := tabular.Decode(input)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := tabular.Decode(input)
			if err != nil {
				t.Errorf("Decode() error = %v", err)
				return
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("concurrent Decode() = %v, want %v", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestDecodeReader(t *testing.T) {
	t.Run("reads all input", func(t *testing.T) {
		table, err := tabular.DecodeReader(strings.NewReader("a\n1\n2"))
		if err != nil {
			t.Fatalf("DecodeReader() error = %v", err)
		}
		if table.Len() != 2 {
			t.Errorf("Len() = %d, want 2", table.Len())
		}
	})

	t.Run("read error is not empty input", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := tabular.DecodeReader(iotest.ErrReader(boom))
		if !errors.Is(err, boom) {
			t.Errorf("DecodeReader() error = %v, want wrapped %v", err, boom)
		}
		if errors.Is(err, tabular.ErrEmptyInput) {
			t.Error("read failure reported as ErrEmptyInput")
		}
	})

	t.Run("empty reader", func(t *testing.T) {
		_, err := tabular.DecodeReader(strings.NewReader(""))
		if !errors.Is(err, tabular.ErrEmptyInput) {
			t.Errorf("DecodeReader() error = %v, want ErrEmptyInput", err)
		}
	})
}

func TestDecodeBytes(t *testing.T) {
	table, err := tabular.DecodeBytes([]byte("h\nv"))
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if got := table.Column("h"); !reflect.DeepEqual(got, []string{"v"}) {
		t.Errorf("Column(h) = %q, want [v]", got)
	}
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`a,"b,c",d`, []string{"a", "b,c", "d"}},
		{`"He said ""hi"""`, []string{`He said "hi"`}},
		{"", []string{""}},
	}
	for _, tt := range tests {
		if got := tabular.SplitFields(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitFields(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTokenizeLines(t *testing.T) {
	got := tabular.TokenizeLines("h\r\n\r\nv\n")
	if want := []string{"h", "v"}; !reflect.DeepEqual(got, want) {
		t.Errorf("TokenizeLines() = %q, want %q", got, want)
	}
	if got := tabular.TokenizeLines(" \n "); len(got) != 0 {
		t.Errorf("TokenizeLines(blank) = %q, want empty", got)
	}
}

func TestFormat(t *testing.T) {
	if got := tabular.Format(); got != "TABULAR" {
		t.Errorf("Format() = %q, want %q", got, "TABULAR")
	}
}
