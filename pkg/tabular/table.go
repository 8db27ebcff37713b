package tabular

// Record maps a column name to its value in one data line.
// Records returned by this package should be treated as read-only.
type Record map[string]string

// Table is the decoded form of one input text.
type Table struct {
	// Columns are the header fields in their original order. Duplicate
	// names are kept here even though a Record can hold only one value each.
	Columns []string
	// Records holds one entry per data line, in input order.
	Records []Record
}

// Assemble splits each data line and pairs its fields with columns.
//
// A row shorter than columns maps the missing columns to "". Fields beyond
// len(columns) are discarded. If two columns share a name the later value
// wins.
func Assemble(columns []string, dataLines []string) []Record {
	records := make([]Record, 0, len(dataLines))
	for _, line := range dataLines {
		records = append(records, newRecord(columns, SplitFields(line)))
	}
	return records
}

func newRecord(columns, fields []string) Record {
	rec := make(Record, len(columns))
	for i, name := range columns {
		if i < len(fields) {
			rec[name] = fields[i]
		} else {
			rec[name] = ""
		}
	}
	return rec
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}

// Has reports whether name is one of the table's columns.
func (t *Table) Has(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns the value of name in every record, in record order.
// It returns nil if name is not a column.
func (t *Table) Column(name string) []string {
	if !t.Has(name) {
		return nil
	}
	values := make([]string, len(t.Records))
	for i, rec := range t.Records {
		values[i] = rec[name]
	}
	return values
}

// UniqueColumns returns the column names with duplicates removed, keeping
// the position of each name's first occurrence. These are the keys a
// consumer can select from.
func (t *Table) UniqueColumns() []string {
	seen := make(map[string]struct{}, len(t.Columns))
	out := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Row returns record i's values in column order.
func (t *Table) Row(i int) []string {
	rec := t.Records[i]
	row := make([]string, len(t.Columns))
	for j, c := range t.Columns {
		row[j] = rec[c]
	}
	return row
}
