package charts

import (
	"bytes"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/spendlens/spendlens/models"
	"github.com/spendlens/spendlens/utils"
)

// ChartGenerator строит PNG-диаграммы расходов
type ChartGenerator struct{}

// NewChartGenerator создает новый генератор диаграмм
func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{}
}

// GenerateSpendingChart создает круговую диаграмму расходов по категориям.
// Доли считаются по модулю суммы, подпись показывает исходное значение.
func (g *ChartGenerator) GenerateSpendingChart(items []models.CategorySpending) ([]byte, error) {
	values := make([]chart.Value, 0, len(items))
	for _, item := range items {
		amount := math.Abs(item.Amount)
		if amount == 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%.2f)", item.Category, item.Amount),
			Value: amount,
			Style: chart.Style{
				FillColor: colorFromHex(utils.CategoryColor(item.Category)),
			},
		})
	}

	if len(values) == 0 {
		return nil, nil // нет данных для диаграммы
	}

	pie := chart.PieChart{
		Width:  800,
		Height: 800,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    30,
				Left:   30,
				Right:  30,
				Bottom: 30,
			},
			FillColor: chart.ColorWhite,
		},
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("ошибка построения диаграммы: %v", err)
	}

	return buf.Bytes(), nil
}

func colorFromHex(hex string) drawing.Color {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	return drawing.ColorFromHex(hex)
}
