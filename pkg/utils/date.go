package utils

import (
	"fmt"
	"strings"
	"time"
)

// Layouts aceitos para datas no formato dia-primeiro (ex.: 31/01/2024).
var dayFirstLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2006-01-02",
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// ParseDayFirstDate interpreta datas textuais com o dia antes do mês.
// "31/01/2024" resulta em 31 de janeiro, nunca em erro de mês.
func ParseDayFirstDate(dateStr string) (*time.Time, error) {
	trimmed := strings.TrimSpace(dateStr)
	if trimmed == "" {
		return nil, fmt.Errorf("data vazia")
	}

	for _, layout := range dayFirstLayouts {
		if date, err := time.Parse(layout, trimmed); err == nil {
			return &date, nil
		}
	}

	return nil, fmt.Errorf("data inválida: %q", trimmed)
}
