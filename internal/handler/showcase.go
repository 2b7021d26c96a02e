package handler

import (
	"net/http"

	"github.com/realtyaudit/capital-service/internal/models"
)

// showcaseLots is the curated set of listings shown next to the calculator.
var showcaseLots = []models.ShowcaseLot{
	{
		ID:          1,
		Title:       "Студия в развивающемся районе",
		City:        "Москва",
		District:    "Новая Москва",
		AreaSqM:     28,
		Price:       8_500_000,
		Growth5yPct: 65,
		FuturePrice: 14_025_000,
		MinPayment:  38_000,
	},
	{
		ID:          2,
		Title:       "Евродвушка бизнес-класса",
		City:        "Санкт-Петербург",
		District:    "Петроградский",
		AreaSqM:     45,
		Price:       15_000_000,
		Growth5yPct: 50,
		FuturePrice: 22_500_000,
		MinPayment:  72_000,
	},
	{
		ID:          3,
		Title:       "Апартаменты под сдачу",
		City:        "Сочи",
		District:    "Адлер",
		AreaSqM:     32,
		Price:       12_000_000,
		Growth5yPct: 80,
		FuturePrice: 21_600_000,
		MinPayment:  55_000,
	},
}

// Showcase returns the static showcase listings
func (h *Handler) Showcase(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, showcaseLots)
}
