package printdoc

import (
	"fmt"
	"html/template"
	"strings"
)

// patternSVG draws the 3x3 unlock-pattern diagram: background grid,
// straight segments in stroke order, visited dots highlighted, the start
// dot filled solid, and each visited dot labeled with its 1-based visiting
// order. The canvas shrinks on thermal layouts.
func patternSVG(pattern []int, mode string) template.HTML {
	if len(pattern) == 0 {
		return ""
	}

	size := 100
	if mode == ModeA4 {
		size = 180
	}
	const grid = 3
	cell := float64(size) / grid
	dotRadius := float64(size) / 10

	center := func(n int) (float64, float64) {
		idx := n - 1
		row := idx / grid
		col := idx % grid
		return float64(col)*cell + cell/2, float64(row)*cell + cell/2
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg" style="margin: 8px auto; display: block;">`, size, size)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#f9f9f9" stroke="#ddd" stroke-width="1" />`, size, size)

	if len(pattern) > 1 {
		b.WriteString(`<g stroke="#FF6B6B" stroke-width="2" fill="none" stroke-linecap="round" stroke-linejoin="round">`)
		for i := 0; i < len(pattern)-1; i++ {
			x1, y1 := center(pattern[i])
			x2, y2 := center(pattern[i+1])
			fmt.Fprintf(&b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" />`, x1, y1, x2, y2)
		}
		b.WriteString(`</g>`)
	}

	visitOrder := map[int]int{}
	for i, n := range pattern {
		if _, seen := visitOrder[n]; !seen {
			visitOrder[n] = i
		}
	}

	for n := 1; n <= grid*grid; n++ {
		x, y := center(n)
		pos, visited := visitOrder[n]
		isStart := len(pattern) > 0 && pattern[0] == n

		fill := "#e8e8e8"
		stroke := "#ccc"
		switch {
		case isStart:
			fill = "#FF6B6B"
			stroke = "#FF6B6B"
		case visited:
			fill = "rgba(255, 107, 107, 0.3)"
			stroke = "#FF6B6B"
		}
		fmt.Fprintf(&b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="1" />`, x, y, dotRadius, fill, stroke)

		if visited {
			textFill := "#FF6B6B"
			if isStart {
				textFill = "#fff"
			}
			fmt.Fprintf(&b,
				`<text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-size="%.1f" font-weight="bold" fill="%s">%d</text>`,
				x, y, dotRadius*1.5, textFill, pos+1)
		}
	}

	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}
