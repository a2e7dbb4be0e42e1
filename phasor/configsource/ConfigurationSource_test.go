package configsource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gpascada/phasoradapter/phasor/data"
)

const sampleXml = `<?xml version="1.0" encoding="UTF-8"?>
<ConfigurationCache>
  <xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" id="ConfigurationCache">
    <xs:element name="ConfigurationCache">
      <xs:complexType>
        <xs:choice minOccurs="0" maxOccurs="unbounded">
          <xs:element name="InputStreamDevices">
            <xs:complexType>
              <xs:sequence>
                <xs:element name="AccessID" type="xs:unsignedShort" />
                <xs:element name="Acronym" type="xs:string" />
              </xs:sequence>
            </xs:complexType>
          </xs:element>
        </xs:choice>
      </xs:complexType>
    </xs:element>
  </xs:schema>
  <InputStreamDevices>
    <AccessID>7</AccessID>
    <Acronym>D7</Acronym>
  </InputStreamDevices>
</ConfigurationCache>`

func TestStaticSourceReturnsWrappedDataSet(t *testing.T) {
	dataSet := data.NewDataSet()
	source := NewStatic(dataSet)

	loaded, err := source.Load()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loaded != dataSet {
		t.Fatalf("expected Load to return the wrapped DataSet unchanged")
	}
}

func TestStaticSourceRejectsNilDataSet(t *testing.T) {
	source := NewStatic(nil)

	if _, err := source.Load(); err == nil {
		t.Fatalf("expected error loading a nil DataSet")
	}
}

func TestFileSourceLoadsConfigurationCacheXml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.xml")

	if err := os.WriteFile(path, []byte(sampleXml), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	source := NewFile(path)
	dataSet, err := source.Load()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	table := dataSet.Table("InputStreamDevices")

	if table == nil {
		t.Fatalf("expected InputStreamDevices table")
	}

	if table.RowCount() != 1 {
		t.Fatalf("expected 1 row, got %d", table.RowCount())
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	source := NewFile(filepath.Join(t.TempDir(), "does-not-exist.xml"))

	if _, err := source.Load(); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
