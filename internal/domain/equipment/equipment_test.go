package equipment

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuzvak/nhh-storefront/internal/domain/errors"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Genie GS-1932 Electric Scissor":   "genie-gs-1932-electric-scissor",
		"Manitou MRT 2150 Plus 360 (Roto)": "manitou-mrt-2150-plus-360-roto",
		"  Merlo Roto 30.16  ":             "merlo-roto-30-16",
		"---":                              "",
		"Ünïcode Lift":                     "n-code-lift",
	}

	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("genie-z-45-25j-diesel-boom"))
	assert.False(t, ValidSlug("Genie Z"))
	assert.False(t, ValidSlug(""))
	assert.False(t, ValidSlug("-lead"))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "specs:merlo-roto-30-16", SpecsKey("merlo-roto-30-16"))
	assert.Equal(t, "downloads:merlo-roto-30-16", DownloadsKey("merlo-roto-30-16"))
}

func TestBuiltinSpecs(t *testing.T) {
	sheet := BuiltinSpecs("genie-gs-1932-electric-scissor")
	require.Equal(t, 7, sheet.Len())
	assert.Equal(t, "Platform Height", sheet[0].Label)

	v, ok := sheet.Get("Fuel")
	require.True(t, ok)
	assert.Equal(t, "Electric", v)

	// callers get their own copy
	sheet[0].Value = "changed"
	assert.Equal(t, "5.79 m", BuiltinSpecs("genie-gs-1932-electric-scissor")[0].Value)

	assert.Equal(t, 0, BuiltinSpecs("unknown-machine").Len())
}

func TestSpecSheetSet(t *testing.T) {
	var sheet SpecSheet
	require.NoError(t, sheet.Set("Weight", "1,000 kg"))
	require.NoError(t, sheet.Set("Fuel", "Diesel"))
	require.NoError(t, sheet.Set("Weight", " 1,200 kg "))

	want := SpecSheet{{Label: "Weight", Value: "1,200 kg"}, {Label: "Fuel", Value: "Diesel"}}
	if diff := cmp.Diff(want, sheet); diff != "" {
		t.Errorf("sheet mismatch (-want +got):\n%s", diff)
	}

	assert.ErrorIs(t, sheet.Set("", "x"), errors.ErrSpecFieldRequired)
	assert.ErrorIs(t, sheet.Set("Width", "  "), errors.ErrSpecFieldRequired)
}

func TestMerge(t *testing.T) {
	base := SpecSheet{{Label: "A", Value: "1"}, {Label: "B", Value: "2"}}
	overrides := SpecSheet{{Label: "C", Value: "3"}, {Label: "A", Value: "9"}}

	merged := Merge(base, overrides)

	want := SpecSheet{{Label: "A", Value: "9"}, {Label: "B", Value: "2"}, {Label: "C", Value: "3"}}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "1", base[0].Value)
}

func TestSpecSheetJSONKeepsOrder(t *testing.T) {
	sheet := SpecSheet{{Label: "Zeta", Value: "1"}, {Label: "Alpha", Value: "2"}}

	data, err := json.Marshal(sheet)
	require.NoError(t, err)
	assert.Equal(t, `{"Zeta":"1","Alpha":"2"}`, string(data))

	var decoded SpecSheet
	require.NoError(t, json.Unmarshal(data, &decoded))
	if diff := cmp.Diff(sheet, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSpecSheetUnmarshal(t *testing.T) {
	var empty SpecSheet
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.Equal(t, 0, empty.Len())

	var bad SpecSheet
	assert.Error(t, json.Unmarshal([]byte(`["not","an","object"]`), &bad))
	assert.Error(t, json.Unmarshal([]byte(`{"Weight": 12}`), &bad))
}

func TestNewDownload(t *testing.T) {
	now := time.Date(2026, 3, 7, 10, 0, 0, 0, time.UTC)
	data := make([]byte, 1572864)

	dl, err := NewDownload("brochures/GS-1932 Spec.PDF", data, now)
	require.NoError(t, err)
	assert.Equal(t, "GS-1932 Spec.PDF", dl.Name)
	assert.Equal(t, DocumentPDF, dl.Type)
	assert.Equal(t, "1.50 MB", dl.Size)
	assert.Equal(t, "07/03/2026", dl.Uploaded)
	assert.Contains(t, dl.URL, "data:application/pdf;base64,")

	payload, err := dl.Payload()
	require.NoError(t, err)
	assert.Len(t, payload, len(data))
}

func TestNewDownload_OfficeDocuments(t *testing.T) {
	dl, err := NewDownload("rates.xlsx", []byte("x"), time.Now())
	require.NoError(t, err)
	assert.Equal(t, DocumentDoc, dl.Type)
	assert.Equal(t, "0.00 MB", dl.Size)
}

func TestNewDownload_RejectsOtherTypes(t *testing.T) {
	_, err := NewDownload("photo.jpg", []byte("x"), time.Now())
	assert.ErrorIs(t, err, errors.ErrUnsupportedDocument)

	_, err = NewDownload("", []byte("x"), time.Now())
	assert.ErrorIs(t, err, errors.ErrUnsupportedDocument)
}
