package engine

import "github.com/realtyaudit/capital-service/internal/models"

// RealEstateMetrics is the full input of the real-estate classifier. Value
// and price feed CAGR upstream; the ladder never looks at them directly.
type RealEstateMetrics struct {
	YearsOwned          int
	CAGRPercent         float64
	ROEPercent          float64
	IsUnderConstruction bool
	IsRented            bool
}

type realEstateRule struct {
	match   func(m RealEstateMetrics) bool
	verdict func(m RealEstateMetrics) models.Verdict
}

// The ladder is evaluated top to bottom, first match wins. A negative rental
// cash flow outranks everything else.
var realEstateLadder = []realEstateRule{
	{
		match: func(m RealEstateMetrics) bool { return m.ROEPercent < 0 },
		verdict: func(m RealEstateMetrics) models.Verdict {
			return models.Verdict{
				Level:   models.LevelRed,
				Status:  "Срочно к продаже",
				Comment: "Текущий денежный поток отрицательный. Актив требует постоянных вливаний средств, что снижает эффективность портфеля",
			}
		},
	},
	{
		match: func(m RealEstateMetrics) bool { return m.IsUnderConstruction },
		verdict: func(m RealEstateMetrics) models.Verdict {
			if m.CAGRPercent >= GrowthTargetPercent {
				return models.Verdict{
					Level:   models.LevelGreen,
					Status:  "Высоколиквидный",
					Comment: "Рост выше рынка, премия стадии строительства ещё не исчерпана",
				}
			}
			return models.Verdict{
				Level:   models.LevelOrange,
				Status:  "Рекомендуется перевложить",
				Comment: "Темп роста на стадии строительства ниже целевого. Рассмотрите продажу по переуступке",
			}
		},
	},
	{
		match: func(m RealEstateMetrics) bool { return m.YearsOwned >= TaxFreeYears },
		verdict: func(m RealEstateMetrics) models.Verdict {
			if m.CAGRPercent < GrowthTargetPercent {
				return models.Verdict{
					Level:   models.LevelRed,
					Status:  "Срочно к продаже",
					Comment: "Премия стадии исчерпана. Актив перешёл в фазу амортизации, капитал заморожен в низкоэффективном объекте",
				}
			}
			return models.Verdict{
				Level:   models.LevelOrange,
				Status:  "Фаза пика",
				Comment: "Объект прошёл типичное окно ценового пика. Стоит оценить фиксацию прибыли",
			}
		},
	},
	{
		match: func(m RealEstateMetrics) bool { return m.YearsOwned == PeakWindowYears },
		verdict: func(m RealEstateMetrics) models.Verdict {
			return models.Verdict{
				Level:   models.LevelOrange,
				Status:  "Фаза пика",
				Comment: "Объект подходит к пятилетнему окну ценового пика. Стоит подготовить сценарий выхода",
			}
		},
	},
	{
		match: func(m RealEstateMetrics) bool { return m.CAGRPercent < GrowthTargetPercent },
		verdict: func(m RealEstateMetrics) models.Verdict {
			comment := "Темп роста ниже целевого, капитал замедляется"
			if !m.IsRented {
				comment = "Темп роста ниже целевого, и объект не сдан в аренду — капитал простаивает"
			}
			return models.Verdict{
				Level:   models.LevelOrange,
				Status:  "Рекомендуется перевложить",
				Comment: comment,
			}
		},
	},
	{
		match: func(m RealEstateMetrics) bool { return !m.IsRented },
		verdict: func(m RealEstateMetrics) models.Verdict {
			return models.Verdict{
				Level:   models.LevelOrange,
				Status:  "Недополученный доход",
				Comment: "Объект не сдан в аренду — теряется арендный денежный поток",
			}
		},
	},
}

// ClassifyRealEstate runs the rule ladder; the fallthrough is a healthy
// asset: high growth, rented, inside the peak window.
func ClassifyRealEstate(m RealEstateMetrics) models.Verdict {
	for _, rule := range realEstateLadder {
		if rule.match(m) {
			return rule.verdict(m)
		}
	}
	return models.Verdict{
		Level:   models.LevelGreen,
		Status:  "Высоколиквидный",
		Comment: "Рост выше рынка, объект приносит арендный доход",
	}
}

// ClassifyStock grades an equity holding by its real yield.
func ClassifyStock(realYieldPercent float64) models.Verdict {
	switch {
	case realYieldPercent < StockRedBelowPercent:
		return models.Verdict{
			Level:   models.LevelRed,
			Status:  "Пересмотреть стратегию",
			Comment: "Доходность ниже нуля. Капитал обесценивается",
		}
	case realYieldPercent < StockOrangeBelowPercent:
		return models.Verdict{
			Level:   models.LevelOrange,
			Status:  "Пересмотреть структуру",
			Comment: "Капитал работает слабо",
		}
	case realYieldPercent < StockYellowBelowPercent:
		return models.Verdict{
			Level:   models.LevelYellow,
			Status:  "Ниже потенциала",
			Comment: "Доходность ниже целевой для фондового рынка",
		}
	default:
		return models.Verdict{
			Level:   models.LevelGreen,
			Status:  "Эффективный",
			Comment: "Капитал работает максимально эффективно",
		}
	}
}

// ClassifyDeposit grades a deposit by its real yield. Deposits are a
// defensive allocation, so their ladder has no red tier.
func ClassifyDeposit(realYieldPercent float64) models.Verdict {
	switch {
	case realYieldPercent < DepositOrangeBelowPercent:
		return models.Verdict{
			Level:   models.LevelOrange,
			Status:  "Обесценивание",
			Comment: "Депозит не компенсирует инфляцию. Рассмотрите альтернативы",
		}
	case realYieldPercent < DepositYellowBelowPercent:
		return models.Verdict{
			Level:   models.LevelYellow,
			Status:  "Почти нулевая эффективность",
			Comment: "Капитал частично съедается инфляцией",
		}
	default:
		return models.Verdict{
			Level:   models.LevelGreen,
			Status:  "Защитная позиция",
			Comment: "Капитал надёжно сохраняется",
		}
	}
}

// ClassifyCash grades the cash pile by its share of total portfolio capital.
// Orange is the most severe cash level.
func ClassifyCash(sharePercent float64) models.Verdict {
	switch {
	case sharePercent > CashExcessSharePercent:
		return models.Verdict{
			Level:   models.LevelOrange,
			Status:  "Капитал простаивает",
			Comment: "Высокая доля неинвестированных средств снижает общую эффективность портфеля",
		}
	case sharePercent > CashSafeSharePercent:
		return models.Verdict{
			Level:   models.LevelYellow,
			Status:  "Избыточная ликвидность",
			Comment: "Часть капитала не работает и подвержена инфляции",
		}
	default:
		return models.Verdict{
			Level:   models.LevelGreen,
			Status:  "Ликвидный резерв",
			Comment: "Оптимальная доля для обеспечения ликвидности",
		}
	}
}

// LostAlternativeIncome is the yearly income foregone against the
// alternative benchmark, floored at zero.
func LostAlternativeIncome(nominalYieldPercent, amount float64) float64 {
	lost := AlternativeYieldPercent - nominalYieldPercent
	if lost <= 0 {
		return 0
	}
	return amount * lost / 100
}
