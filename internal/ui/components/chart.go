package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/anirudh/explainly/internal/ui/theme"
)

// Chart renders a sampled curve as a block-character plot with a
// marker at the current x position.
type Chart struct {
	Title  string
	YUnit  string
	Xs     []float64
	Ys     []float64
	MarkX  float64
	Width  int
	Height int
}

var chartBlocks = []rune(" ▁▂▃▄▅▆▇█")

// View renders the chart. Columns are resampled from the data points to
// fit the width; each column shows a vertical bar scaled to the y range.
func (c Chart) View() string {
	if len(c.Xs) == 0 || len(c.Xs) != len(c.Ys) {
		return ""
	}

	width := c.Width
	if width < 10 {
		width = 10
	}
	height := c.Height
	if height < 3 {
		height = 3
	}

	minY, maxY := c.Ys[0], c.Ys[0]
	for _, y := range c.Ys {
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	span := maxY - minY
	if span == 0 {
		span = 1
	}

	// Resample to one y value per column.
	cols := make([]float64, width)
	for i := range cols {
		idx := i * (len(c.Ys) - 1) / (width - 1)
		cols[i] = c.Ys[idx]
	}

	// Marker column for the current x.
	markCol := -1
	if c.Xs[len(c.Xs)-1] > c.Xs[0] {
		frac := (c.MarkX - c.Xs[0]) / (c.Xs[len(c.Xs)-1] - c.Xs[0])
		if frac >= 0 && frac <= 1 {
			markCol = int(frac * float64(width-1))
		}
	}

	// Each column maps to height*8 eighth-blocks.
	levels := height * 8
	rows := make([][]rune, height)
	for r := range rows {
		rows[r] = make([]rune, width)
		for i := range rows[r] {
			rows[r][i] = ' '
		}
	}

	for col, y := range cols {
		lvl := int(math.Round((y - minY) / span * float64(levels)))
		for row := 0; row < height; row++ {
			// row 0 is the top of the chart.
			base := (height - 1 - row) * 8
			switch {
			case lvl >= base+8:
				rows[row][col] = chartBlocks[8]
			case lvl > base:
				rows[row][col] = chartBlocks[lvl-base]
			}
		}
	}

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.Title))
		b.WriteString("\n")
	}

	axisStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	for r, row := range rows {
		label := "        "
		if r == 0 {
			label = fmt.Sprintf("%7s ", formatSliderValue(maxY))
		} else if r == height-1 {
			label = fmt.Sprintf("%7s ", formatSliderValue(minY))
		}
		b.WriteString(axisStyle.Render(label))

		if markCol >= 0 {
			b.WriteString(theme.ChartLine.Render(string(row[:markCol])))
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(string(row[markCol])))
			b.WriteString(theme.ChartLine.Render(string(row[markCol+1:])))
		} else {
			b.WriteString(theme.ChartLine.Render(string(row)))
		}
		b.WriteString("\n")
	}

	if c.YUnit != "" {
		b.WriteString(axisStyle.Render("        " + c.YUnit))
	}

	return b.String()
}
