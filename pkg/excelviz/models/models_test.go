package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0 B"},
		{-5, "0 B"},
		{512, "512 B"},
		{1000, "1000 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{52428800, "50 MB"},
		{3 * 1024 * 1024 * 1024, "3 GB"},
		{5 * 1024 * 1024 * 1024 * 1024, "5120 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatFileSize(tt.input), "FormatFileSize(%d)", tt.input)
	}
}

func TestNewFileInfo(t *testing.T) {
	info := NewFileInfo("sales.xlsx", 2048, "application/vnd.ms-excel")
	assert.Equal(t, "2 KB", info.SizeLabel)
	assert.Equal(t, "sales.xlsx", info.Name)
}

func TestDatasetPreview(t *testing.T) {
	rows := make([]Row, 25)
	for i := range rows {
		rows[i] = Row{"n": int64(i)}
	}
	ds := NewDataset([]string{"n"}, rows)

	p := ds.Preview(10)
	assert.Len(t, p.Rows, 10)
	assert.Equal(t, 25, p.TotalRows)
	assert.Equal(t, int64(9), p.Rows[9]["n"])

	assert.Len(t, ds.Preview(100).Rows, 25)
	assert.Len(t, ds.Preview(-1).Rows, 25)
	assert.Len(t, ds.Preview(0).Rows, 0)
}

func TestNewDataset(t *testing.T) {
	ds := NewDataset([]string{"a"}, nil)
	assert.NotNil(t, ds.Rows)
	assert.Equal(t, 0, ds.RowCount)
	assert.True(t, ds.HasColumn("a"))
	assert.False(t, ds.HasColumn("b"))
}

func TestColorCSS(t *testing.T) {
	assert.Equal(t, "hsl(207, 90%, 54%)", HSL(207, 0.90, 0.54).CSS())
	assert.Equal(t, "hsla(207, 90%, 54%, 0.125)", HSL(207, 0.90, 0.54).WithAlpha(0.125).CSS())
	assert.Equal(t, "hsl(0, 0%, 90%)", HSL(0, 0, 0.9).CSS())
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#ff0000", HSL(0, 1, 0.5).Hex())
	assert.Equal(t, "#00ff00", HSL(120, 1, 0.5).Hex())
	assert.Equal(t, "#ffffff", Color{L: 1, A: 1}.Hex())

	r, g, b, a := HSL(0, 1, 0.5).WithAlpha(0.5).RGBA()
	assert.Equal(t, []uint8{255, 0, 0, 128}, []uint8{r, g, b, a})
}

func TestColorJSON(t *testing.T) {
	data, err := json.Marshal(HSL(0, 1, 0.5))
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "hsl(0, 100%, 50%)", fields["css"])
	assert.Equal(t, "#ff0000", fields["hex"])

	var back Color
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, HSL(0, 1, 0.5), back)
}

func TestChartKindIsRadial(t *testing.T) {
	assert.True(t, KindPie.IsRadial())
	assert.True(t, KindDoughnut.IsRadial())
	assert.False(t, KindLine.IsRadial())
	assert.False(t, KindBar.IsRadial())
	assert.False(t, KindScatter.IsRadial())
}
