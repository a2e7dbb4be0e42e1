package cacheconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gpascada/phasoradapter/phasor/data"
	"github.com/gpascada/phasoradapter/phasor/guid"
)

func buildFrame() *data.DataSet {
	dataSet := data.NewDataSet()
	table := dataSet.CreateTable("InputStreamDevices")
	table.AddColumn(table.CreateColumn("Acronym", data.DataType.String, ""))
	table.AddColumn(table.CreateColumn("SignalID", data.DataType.Guid, ""))

	row := table.CreateRow()
	row.SetValue(0, "SUB1")
	row.SetValue(1, guid.New())
	table.AddRow(row)
	dataSet.AddTable(table)

	return dataSet
}

func TestLoadMissingFileReturnsNilNil(t *testing.T) {
	store := NewStore(t.TempDir())

	frame, err := store.Load("sub1")

	if err != nil {
		t.Fatalf("expected no error for a missing cache file, got %v", err)
	}

	if frame != nil {
		t.Fatalf("expected nil frame for a missing cache file")
	}
}

func TestCacheThenLoadRoundTrips(t *testing.T) {
	store := NewStore(t.TempDir())
	frame := buildFrame()

	task := store.Cache("sub1", frame, func(msg string) { t.Fatalf("unexpected cache error: %s", msg) })
	task.Wait()

	loaded, err := store.Load("sub1")

	if err != nil {
		t.Fatalf("unexpected error loading cached frame: %v", err)
	}

	table := loaded.Table("InputStreamDevices")

	if table == nil || table.RowCount() != 1 {
		t.Fatalf("expected cached InputStreamDevices table with 1 row")
	}

	acronym, _, _ := table.Row(0).StringValue(table.ColumnIndex("Acronym"))

	if acronym != "SUB1" {
		t.Fatalf("expected acronym SUB1, got %q", acronym)
	}
}

func TestLoadCorruptFileReportsError(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	path := filepath.Join(dir, "sub1.configuration.xml")

	if err := os.WriteFile(path, []byte("not valid xml"), 0o644); err != nil {
		t.Fatalf("failed to write corrupt fixture: %v", err)
	}

	if _, err := store.Load("sub1"); err == nil {
		t.Fatalf("expected an error loading a corrupt cache file")
	}
}
