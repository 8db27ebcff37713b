package tabular

import (
	"fmt"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Node converts the table to Shape's AST, in the same shape the shape-csv
// parser produces:
//   - *ast.ArrayDataNode for the file (array of rows, header first)
//   - *ast.ArrayDataNode for each row
//   - *ast.LiteralNode holding a string for each field
func (t *Table) Node() ast.SchemaNode {
	rows := make([]ast.SchemaNode, 0, len(t.Records)+1)
	rows = append(rows, rowNode(t.Columns))
	for i := range t.Records {
		rows = append(rows, rowNode(t.Row(i)))
	}
	return ast.NewArrayDataNode(rows, ast.ZeroPosition())
}

func rowNode(fields []string) *ast.ArrayDataNode {
	elems := make([]ast.SchemaNode, len(fields))
	for i, f := range fields {
		elems[i] = ast.NewLiteralNode(f, ast.ZeroPosition())
	}
	return ast.NewArrayDataNode(elems, ast.ZeroPosition())
}

// FromNode builds a Table from a Shape AST of rows.
//
// The first row supplies the columns; later rows are paired with them using
// the same padding and truncation rules as Assemble. Field values are taken
// as-is, without trimming. Returns ErrEmptyInput for an array with no rows
// and ErrUnsupportedNode for any other shape.
func FromNode(node ast.SchemaNode) (*Table, error) {
	file, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("%w: expected *ast.ArrayDataNode, got %T", ErrUnsupportedNode, node)
	}

	elements := file.Elements()
	if len(elements) == 0 {
		return nil, ErrEmptyInput
	}

	rows := make([][]string, len(elements))
	for i, elem := range elements {
		row, err := rowValues(elem)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = row
	}

	columns := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, newRecord(columns, row))
	}
	return &Table{Columns: columns, Records: records}, nil
}

func rowValues(node ast.SchemaNode) ([]string, error) {
	row, ok := node.(*ast.ArrayDataNode)
	if !ok {
		return nil, fmt.Errorf("%w: expected row *ast.ArrayDataNode, got %T", ErrUnsupportedNode, node)
	}

	elements := row.Elements()
	fields := make([]string, len(elements))
	for i, elem := range elements {
		lit, ok := elem.(*ast.LiteralNode)
		if !ok {
			return nil, fmt.Errorf("%w: expected field *ast.LiteralNode, got %T", ErrUnsupportedNode, elem)
		}
		switch v := lit.Value().(type) {
		case string:
			fields[i] = v
		case nil:
			fields[i] = ""
		default:
			fields[i] = fmt.Sprintf("%v", v)
		}
	}
	return fields, nil
}
