package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/fitforge/fitforge-api/internal/plans"
)

// Generator renders a weekly plan as a downloadable PDF or CSV.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(format string, stored *plans.StoredPlan, week []plans.DayAggregate) ([]byte, error) {
	switch format {
	case FormatPDF:
		return g.generatePDF(stored, week)
	case FormatCSV:
		return g.generateCSV(week)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// generateCSV writes one row per plan entry, workouts then meals.
func (g *Generator) generateCSV(week []plans.DayAggregate) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"day", "kind", "title", "detail", "kcal", "protein_g", "carbs_g", "fat_g"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, day := range week {
		for _, workout := range day.Workouts {
			kcal := ""
			if workout.BurnKcalEst != nil {
				kcal = formatKcal(*workout.BurnKcalEst)
			}
			detail := fmt.Sprintf("%d exercises", len(workout.Exercises))
			row := []string{day.Day, "workout", workout.Title, detail, kcal, "", "", ""}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
		for _, meal := range day.Meals {
			row := []string{
				day.Day, "meal", meal.Meal, meal.Item,
				formatKcal(meal.Kcal),
				formatKcal(meal.Macros.P),
				formatKcal(meal.Macros.C),
				formatKcal(meal.Macros.F),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// generatePDF renders one section per day with workout and meal
// tables. Core fonts only, the plan text is ASCII.
func (g *Generator) generatePDF(stored *plans.StoredPlan, week []plans.DayAggregate) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	const fontName = "Arial"

	pdf.AddPage()
	pdf.SetFont(fontName, "B", 16)
	pdf.Cell(0, 10, "Weekly Fitness & Nutrition Plan")
	pdf.Ln(8)

	pdf.SetFont(fontName, "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Goal: %s    Generated: %s", stored.Goal, stored.CreatedAt.Format("2006-01-02")))
	pdf.Ln(10)

	for _, day := range week {
		if len(day.Workouts) == 0 && len(day.Meals) == 0 {
			continue
		}

		pdf.SetFont(fontName, "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("%s  (total %s kcal)", day.DayFullName, formatKcal(day.TotalKcal)))
		pdf.Ln(8)

		if len(day.Workouts) > 0 {
			pdf.SetFont(fontName, "B", 9)
			pdf.CellFormat(60, 6, "Workout", "1", 0, "C", false, 0, "")
			pdf.CellFormat(90, 6, "Exercises", "1", 0, "C", false, 0, "")
			pdf.CellFormat(30, 6, "Burn kcal", "1", 1, "C", false, 0, "")

			pdf.SetFont(fontName, "", 9)
			for _, workout := range day.Workouts {
				burn := "-"
				if workout.BurnKcalEst != nil {
					burn = formatKcal(*workout.BurnKcalEst)
				}
				pdf.CellFormat(60, 6, workout.Title, "1", 0, "L", false, 0, "")
				pdf.CellFormat(90, 6, summarizeExercises(workout.Exercises), "1", 0, "L", false, 0, "")
				pdf.CellFormat(30, 6, burn, "1", 1, "C", false, 0, "")
			}
			pdf.Ln(2)
		}

		if len(day.Meals) > 0 {
			pdf.SetFont(fontName, "B", 9)
			pdf.CellFormat(25, 6, "Meal", "1", 0, "C", false, 0, "")
			pdf.CellFormat(85, 6, "Item", "1", 0, "C", false, 0, "")
			pdf.CellFormat(20, 6, "Kcal", "1", 0, "C", false, 0, "")
			pdf.CellFormat(50, 6, "P / C / F", "1", 1, "C", false, 0, "")

			pdf.SetFont(fontName, "", 9)
			for _, meal := range day.Meals {
				macros := fmt.Sprintf("%s / %s / %s",
					formatKcal(meal.Macros.P), formatKcal(meal.Macros.C), formatKcal(meal.Macros.F))
				pdf.CellFormat(25, 6, meal.Meal, "1", 0, "L", false, 0, "")
				pdf.CellFormat(85, 6, meal.Item, "1", 0, "L", false, 0, "")
				pdf.CellFormat(20, 6, formatKcal(meal.Kcal), "1", 0, "C", false, 0, "")
				pdf.CellFormat(50, 6, macros, "1", 1, "C", false, 0, "")
			}
		}

		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func summarizeExercises(exercises []plans.Exercise) string {
	if len(exercises) == 0 {
		return "-"
	}
	summary := ""
	for i, ex := range exercises {
		if i > 0 {
			summary += ", "
		}
		summary += fmt.Sprintf("%s %dx%s", ex.Name, ex.Sets, ex.Reps)
	}
	return summary
}

func formatKcal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
