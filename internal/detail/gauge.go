package detail

import (
	"github.com/lexdesk/lexdesk/internal/api"
	"github.com/lexdesk/lexdesk/internal/document"
)

// Ordinal returns the level's position in document.RiskLevels. Unknown
// levels sit at the medium position.
func Ordinal(level document.RiskLevel) int {
	for i, l := range document.RiskLevels {
		if l == level {
			return i
		}
	}
	return 1
}

// FillPercent is the gauge fill for level: (ordinal+1)/4 of the bar.
func FillPercent(level document.RiskLevel) int {
	return (Ordinal(level) + 1) * 100 / len(document.RiskLevels)
}

// LegendItem is one level marker under the gauge bar.
type LegendItem struct {
	Level  document.RiskLevel
	Active bool
}

// Gauge is the display-only projection of a risk profile.
type Gauge struct {
	Level      document.RiskLevel
	Score      int
	Ordinal    int
	Percent    int
	Legend     []LegendItem
	Dimensions api.Dimensions
	Big        bool
}

// NewGauge derives the gauge for p. Dimensions is nil when the profile has
// none, which hides that section.
func NewGauge(p document.RiskProfile, big bool) Gauge {
	level := p.OverallRiskLevel
	if level == "" {
		level = document.DefaultRiskLevel
	}
	g := Gauge{
		Level:   level,
		Score:   p.OverallRiskScore,
		Ordinal: Ordinal(level),
		Percent: FillPercent(level),
		Big:     big,
	}
	for _, l := range document.RiskLevels {
		g.Legend = append(g.Legend, LegendItem{Level: l, Active: l == level})
	}
	if len(p.RiskDimensions) > 0 {
		g.Dimensions = p.RiskDimensions
	}
	return g
}
