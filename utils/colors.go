package utils

var categoryColors = []string{
	"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF",
	"#FF9F40", "#8AC27A", "#E763B5", "#FFC107", "#663399",
}

// CategoryColor возвращает стабильный цвет для категории, поэтому цвета на
// страницах и в PNG-экспорте одинаковые. Хеш h = ord(c) + 31*h считается по
// модулю размера палитры, чтобы длинные названия не переполняли int.
func CategoryColor(category string) string {
	hash := 0
	for _, r := range category {
		hash = (int(r) + 31*hash) % len(categoryColors)
	}
	return categoryColors[hash]
}
