// Package chart shapes the word-frequency list into points for the pie
// chart renderer.
package chart

import "github.com/Alfex4936/nlpdash/internal/model"

// Title is the heading the renderer shows above the chart.
const Title = "Most common words"

// Build maps words to chart points one-to-one, keeping the service order.
// The result is never nil; an empty slice means "no chart".
func Build(words []model.WordFrequency) []model.ChartPoint {
	points := make([]model.ChartPoint, 0, len(words))

	total := 0
	for _, w := range words {
		total += w.Count
	}

	for _, w := range words {
		p := model.ChartPoint{
			Value:        w.Count,
			Label:        w.Word,
			TooltipLabel: w.Word,
		}
		if total > 0 {
			p.Percent = float64(w.Count) * 100 / float64(total)
		}
		points = append(points, p)
	}
	return points
}
