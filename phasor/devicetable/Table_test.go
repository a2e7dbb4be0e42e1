package devicetable

import (
	"testing"

	"github.com/gpascada/phasoradapter/phasor/data"
)

func buildDevicesDataSet(rows [][4]interface{}) *data.DataSet {
	// rows: [ParentID uint32, AccessID uint16, Acronym string, Name string]
	dataSet := data.NewDataSet()
	table := dataSet.CreateTable("InputStreamDevices")

	table.AddColumn(table.CreateColumn("ParentID", data.DataType.UInt32, ""))
	table.AddColumn(table.CreateColumn("AccessID", data.DataType.UInt16, ""))
	table.AddColumn(table.CreateColumn("Acronym", data.DataType.String, ""))
	table.AddColumn(table.CreateColumn("Name", data.DataType.String, ""))
	table.AddColumn(table.CreateColumn("ID", data.DataType.UInt32, ""))

	for i, values := range rows {
		row := table.CreateRow()
		row.SetValue(0, values[0])
		row.SetValue(1, values[1])
		row.SetValue(2, values[2])
		row.SetValue(3, values[3])
		row.SetValue(4, uint32(i+1))
		table.AddRow(row)
	}

	dataSet.AddTable(table)

	return dataSet
}

func TestLoadSingleDevice(t *testing.T) {
	dataSet := buildDevicesDataSet([][4]interface{}{
		{uint32(0), uint16(7), "D7", "Device Seven"},
	})

	var errs []string
	table := Load(dataSet, 7, false, func(msg string) { errs = append(errs, msg) })

	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if table.Count() != 1 {
		t.Fatalf("expected 1 device, got %d", table.Count())
	}

	record, ok := table.Resolve(7, "D7")

	if !ok {
		t.Fatalf("expected to resolve device D7")
	}

	if record.StationName != "Device Seven" {
		t.Fatalf("unexpected station name: %q", record.StationName)
	}
}

// TestIdCodeCollisionUsesLabelTable covers S4: a concentrator with two devices sharing accessID=1
// keeps the first in the idCode (primary) map and the colliding second in the label (secondary)
// map, and both resolve.
func TestIdCodeCollisionUsesLabelTable(t *testing.T) {
	dataSet := buildDevicesDataSet([][4]interface{}{
		{uint32(1), uint16(1), "A", "Device A"},
		{uint32(1), uint16(1), "B", "Device B"},
	})

	var errs []string
	table := Load(dataSet, 1, true, func(msg string) { errs = append(errs, msg) })

	if len(errs) != 0 {
		t.Fatalf("unexpected errors on legitimate collision: %v", errs)
	}

	if table.Count() != 2 {
		t.Fatalf("expected both devices present, got %d", table.Count())
	}

	a, ok := table.Resolve(1, "A")
	if !ok || a.Label != "A" {
		t.Fatalf("expected to resolve device A via idCode table")
	}

	b, ok := table.Resolve(1, "B")
	if !ok || b.Label != "B" {
		t.Fatalf("expected to resolve device B via label table")
	}
}

func TestDuplicateIdAndLabelIsRejected(t *testing.T) {
	dataSet := buildDevicesDataSet([][4]interface{}{
		{uint32(1), uint16(1), "A", "Device A"},
		{uint32(1), uint16(1), "B", "Device B"},
		{uint32(1), uint16(1), "B", "Device B Duplicate"},
	})

	var errs []string
	table := Load(dataSet, 1, true, func(msg string) { errs = append(errs, msg) })

	if len(errs) != 1 {
		t.Fatalf("expected exactly one rejection error, got %d: %v", len(errs), errs)
	}

	if table.Count() != 2 {
		t.Fatalf("expected the duplicate row to be rejected, count=%d", table.Count())
	}
}

func TestResolveUndefinedDevice(t *testing.T) {
	dataSet := buildDevicesDataSet([][4]interface{}{
		{uint32(0), uint16(7), "D7", "Device Seven"},
	})

	table := Load(dataSet, 7, false, func(string) {})

	if _, ok := table.Resolve(99, "GHOST"); ok {
		t.Fatalf("expected GHOST device to be unresolved")
	}
}
