package csvutils

import (
	"errors"
	"testing"
)

func TestParseTypesCells(t *testing.T) {
	columns, rows, err := Parse("name,count,ratio,active,note\nWidget,3,0.5,true,\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(columns) != 5 {
		t.Fatalf("expected 5 columns, got %v", columns)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row["name"] != "Widget" {
		t.Errorf("string cell: %#v", row["name"])
	}
	if row["count"] != float64(3) {
		t.Errorf("integer cell should be float64: %#v", row["count"])
	}
	if row["ratio"] != float64(0.5) {
		t.Errorf("decimal cell: %#v", row["ratio"])
	}
	if row["active"] != true {
		t.Errorf("boolean cell: %#v", row["active"])
	}
	if row["note"] != nil {
		t.Errorf("empty cell should be nil: %#v", row["note"])
	}
}

func TestParseBooleanSpellings(t *testing.T) {
	_, rows, err := Parse("a,b,c,d\ntrue,TRUE,False,truthy\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	row := rows[0]
	if row["a"] != true || row["b"] != true || row["c"] != false {
		t.Errorf("recognized boolean spellings: %#v", row)
	}
	if row["d"] != "truthy" {
		t.Errorf("only exact spellings are booleans: %#v", row["d"])
	}
}

func TestParseSkipsEmptyRecords(t *testing.T) {
	_, rows, err := Parse("a,b\n1,2\n,\n3,4\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("blank records should be skipped, got %d rows", len(rows))
	}
	if rows[1]["a"] != float64(3) {
		t.Errorf("rows after a blank record should survive: %#v", rows[1])
	}
}

func TestParseRaggedRecords(t *testing.T) {
	_, rows, err := Parse("a,b,c\n1,2\n1,2,3,4\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	short := rows[0]
	if _, ok := short["c"]; ok {
		t.Errorf("short record should leave trailing columns absent: %#v", short)
	}
	long := rows[1]
	if len(long) != 3 {
		t.Errorf("cells beyond the header should be dropped: %#v", long)
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, _, err := Parse("")
	if !errors.Is(err, ErrNoHeader) {
		t.Fatalf("expected no-header error, got %v", err)
	}

	columns, rows, err := Parse("a,b\n")
	if err != nil {
		t.Fatalf("header-only parse failed: %v", err)
	}
	if len(columns) != 2 || len(rows) != 0 {
		t.Errorf("header-only input should yield columns and zero rows")
	}
}

func TestParseQuotedCells(t *testing.T) {
	_, rows, err := Parse("name,city\n\"Smith, Jane\",Oslo\n")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if rows[0]["name"] != "Smith, Jane" {
		t.Errorf("quoted comma should stay in the cell: %#v", rows[0]["name"])
	}
}
