// Package callsheet renders daily call sheets as PDF documents.
package callsheet

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"
)

// ScheduleRow is one crew line on the call sheet schedule table.
type ScheduleRow struct {
	CallTime   string
	FullName   string
	Department string
	Phone      string
}

// Weather holds the optional conditions block for the shoot day.
type Weather struct {
	Summary      string
	TemperatureC float64
	Sunrise      string
	Sunset       string
}

// Data is everything the renderer needs for one call sheet.
type Data struct {
	ProjectName     string
	ProjectCode     string
	ShootDate       string
	GeneralCallTime string
	LocationName    string
	Weather         *Weather
	Schedule        []ScheduleRow
	DietaryCounts   map[string]int
	ADNotes         string
	IncludeADNotes  bool
}

// Render produces the call sheet PDF as a byte slice.
func Render(data Data) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	renderHeader(pdf, data)
	renderDayInfo(pdf, data)
	renderSchedule(pdf, data.Schedule)
	renderDietary(pdf, data.DietaryCounts)
	if data.IncludeADNotes && data.ADNotes != "" {
		renderNotes(pdf, data.ADNotes)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render call sheet pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderHeader(pdf *fpdf.Fpdf, data Data) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, data.ProjectName, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, fmt.Sprintf("Call Sheet  |  %s  |  Project %s", data.ShootDate, data.ProjectCode), "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)
}

func renderDayInfo(pdf *fpdf.Fpdf, data Data) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("General Call: %s", data.GeneralCallTime), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	if data.LocationName != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("Location: %s", data.LocationName), "", 1, "L", false, 0, "")
	}
	if w := data.Weather; w != nil {
		line := w.Summary
		if line == "" {
			line = "Forecast unavailable"
		}
		pdf.CellFormat(0, 6, fmt.Sprintf("Weather: %s, %.0f C", line, w.TemperatureC), "", 1, "L", false, 0, "")
		if w.Sunrise != "" || w.Sunset != "" {
			pdf.CellFormat(0, 6, fmt.Sprintf("Sunrise: %s   Sunset: %s", w.Sunrise, w.Sunset), "", 1, "L", false, 0, "")
		}
	}
	pdf.Ln(4)
}

func renderSchedule(pdf *fpdf.Fpdf, rows []ScheduleRow) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Schedule", "", 1, "L", false, 0, "")

	widths := []float64{25, 70, 50, 35}
	headers := []string{"Call", "Name", "Department", "Phone"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		pdf.CellFormat(widths[0], 6, row.CallTime, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, row.FullName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, row.Department, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, row.Phone, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

// renderDietary prints the catering summary in a stable order.
func renderDietary(pdf *fpdf.Fpdf, counts map[string]int) {
	if len(counts) == 0 {
		return
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Catering Notes", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, k := range keys {
		pdf.CellFormat(0, 6, fmt.Sprintf("%s: %d", k, counts[k]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func renderNotes(pdf *fpdf.Fpdf, notes string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "AD Notes", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, notes, "", "L", false)
}
