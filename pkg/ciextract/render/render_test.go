package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/ciextract-go/pkg/ciextract/models"
)

func sampleTable() models.Table {
	grey := models.ColorGrey
	orange := models.ColorOrange
	return models.Table{
		Columns: models.Columns([]string{"Title"}, []string{"IFR", "IFA"}),
		Records: []models.DisplayRecord{
			{
				Values:     []string{"Pump <datasheet>", "", "", "Datasheet"},
				Indicators: []models.Indicator{{Marker: "DR", Color: &grey}, {}},
			},
			{
				Values:     []string{"Pump curve", "", "", "Curve"},
				Indicators: []models.Indicator{{}, {Marker: "U", Color: &orange}},
			},
		},
	}
}

func TestHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, sampleTable()))
	out := buf.String()

	assert.Contains(t, out, `<table class="table">`)
	assert.Contains(t, out, "<th>SL.No</th><th>Document Number</th><th>Drawing Number</th><th>Title</th><th>IFR</th><th>IFA</th>")
	assert.Contains(t, out, "Pump &lt;datasheet&gt;")
	assert.Contains(t, out, "background-color: #808080")
	assert.Contains(t, out, "background-color: #FFA500")
	assert.Contains(t, out, "border-radius: 50%")
	assert.Equal(t, 2, strings.Count(out, "<div style="))
	assert.Equal(t, 12, strings.Count(out, "<td>"))
}

func TestHTMLPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HTMLPage(&buf, "Documents & stages", sampleTable()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Documents &amp; stages</title>")
	assert.Contains(t, out, "font-weight: bold;")
	assert.Contains(t, out, "border: 1px solid black;")
}

func TestText(t *testing.T) {
	out := Text(sampleTable())

	assert.Contains(t, out, "SL.No")
	assert.Contains(t, out, "Pump <datasheet>")
	assert.Equal(t, 2, strings.Count(out, Dot))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// rule, header, rule, two rows, rule
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "+"))
}

func TestTextFoldsLineBreaks(t *testing.T) {
	table := sampleTable()
	table.Columns[3] = "Document\nTitle"
	table.Records[0].Values[3] = "Pump\r\ndata sheet"

	out := Text(table)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, out, "Document Title")
	assert.Contains(t, out, "Pump data sheet")

	width := lipgloss.Width(lines[0])
	for i, line := range lines {
		assert.Equal(t, width, lipgloss.Width(line), "line %d", i)
	}
}
