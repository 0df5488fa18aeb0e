package domain

// ChartPoint é um ponto de uma série agregada do dashboard.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartSeries é a série de um dos gráficos. Com o subconjunto filtrado
// vazio a série vem sem pontos e com a mensagem de estado vazio.
type ChartSeries struct {
	Title   string       `json:"title"`
	Points  []ChartPoint `json:"points"`
	Message string       `json:"message,omitempty"`
}
