package diagram

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// ProfileDiagramData holds data for drawing a deflected beam
type ProfileDiagramData struct {
	// Beam
	Length float64 // m
	Height float64 // m
	Base   float64 // m

	// Loading
	Load         float64 // N
	LoadPosition float64 // m from the left support
	Material     string

	// Solution
	Stations        []float64 // x_i (m)
	Deflections     []float64 // δ_i (m)
	LoadSampleIndex int
	PeakStress      float64 // Pa
	AllowableStress float64 // Pa
	Overstressed    bool
}

// DrawASCIIProfile plots the deflection curve in millimetres
func DrawASCIIProfile(data ProfileDiagramData, height, width int) string {
	if len(data.Deflections) == 0 {
		return ""
	}

	mm := make([]float64, len(data.Deflections))
	for i, d := range data.Deflections {
		mm[i] = d * 1000
	}

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Precision(4),
		asciigraph.Caption(fmt.Sprintf("Deflection δ (mm) over L = %g m", data.Length)),
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  DEFLECTED SHAPE\n")
	sb.WriteString("  ───────────────\n\n")
	sb.WriteString(asciigraph.Plot(mm, opts...))
	sb.WriteString("\n")
	return sb.String()
}

// DrawASCIIBeam draws the beam on its supports with the load marker at the load station
func DrawASCIIBeam(data ProfileDiagramData, widthChars int) string {
	var sb strings.Builder

	n := len(data.Deflections)
	if n == 0 || widthChars < 4 {
		return ""
	}

	loadCol := data.LoadSampleIndex * (widthChars - 1) / n

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s▼ P = %.1f N\n", strings.Repeat(" ", loadCol), data.Load))
	sb.WriteString(fmt.Sprintf("  %s\n", strings.Repeat("═", widthChars)))
	sb.WriteString(fmt.Sprintf("  △%s○\n", strings.Repeat(" ", widthChars-2)))
	sb.WriteString(fmt.Sprintf("  Px = %.3f m   (station %d of %d)\n", data.LoadPosition, data.LoadSampleIndex, n))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if l := len([]rune(line)); l > maxLen {
			maxLen = l
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to width runes
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
