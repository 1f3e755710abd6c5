package menu

import (
	"github.com/shopspring/decimal"

	"github.com/Abdulla-Nurislam/shiny-canteen/internal/enum"
)

// Seed fills the store with the canteen's standing menu so the service
// is browsable on a fresh start.
func Seed(s *Store) error {
	dishes := []ItemParams{
		{
			Name:        "Пюре с котлетой",
			Description: "Нежное картофельное пюре с сочной мясной котлетой",
			Price:       decimal.NewFromInt(850),
			Category:    "Основные блюда",
			Image:       "mashed-potatoes-cutlet",
			Allergens:   []string{"молоко", "глютен"},
			Nutrition:   Nutrition{Calories: 450, Protein: 22, Carbs: 48, Fat: 18},
			PrepTime:    15,
			Status:      enum.ItemStatusActive,
		},
		{
			Name:        "Макароны по-флотски",
			Description: "Классические макароны с мясным фаршем",
			Price:       decimal.NewFromInt(750),
			Category:    "Основные блюда",
			Image:       "pasta-meat",
			Allergens:   []string{"глютен"},
			Nutrition:   Nutrition{Calories: 520, Protein: 24, Carbs: 62, Fat: 20},
			PrepTime:    12,
			Status:      enum.ItemStatusActive,
		},
		{
			Name:         "Каша манная молочная",
			Description:  "Нежная молочная каша с маслом",
			Price:        decimal.NewFromInt(400),
			Category:     "Завтраки",
			Image:        "porridge",
			IsVegetarian: true,
			Allergens:    []string{"молоко", "глютен"},
			Nutrition:    Nutrition{Calories: 280, Protein: 8, Carbs: 42, Fat: 9},
			PrepTime:     8,
			Status:       enum.ItemStatusActive,
		},
		{
			Name:        "Суп гороховый с гренками",
			Description: "Наваристый гороховый суп с хрустящими гренками",
			Price:       decimal.NewFromInt(650),
			Category:    "Супы",
			Image:       "pea-soup",
			Allergens:   []string{"глютен"},
			Nutrition:   Nutrition{Calories: 320, Protein: 14, Carbs: 45, Fat: 10},
			PrepTime:    10,
			Status:      enum.ItemStatusActive,
		},
		{
			Name:        "Рис отварной с подливой",
			Description: "Рассыпчатый рис с мясной подливой",
			Price:       decimal.NewFromInt(700),
			Category:    "Основные блюда",
			Image:       "rice-gravy",
			Nutrition:   Nutrition{Calories: 410, Protein: 18, Carbs: 58, Fat: 12},
			PrepTime:    14,
			Status:      enum.ItemStatusActive,
		},
		{
			Name:        "Сосиска в тесте",
			Description: "Свежая выпечка с сочной сосиской",
			Price:       decimal.NewFromInt(300),
			Category:    "Выпечка",
			Image:       "sausage-roll",
			Allergens:   []string{"глютен", "яйцо"},
			Nutrition:   Nutrition{Calories: 340, Protein: 12, Carbs: 38, Fat: 16},
			PrepTime:    5,
			Status:      enum.ItemStatusActive,
		},
		{
			Name:         "Булочка с маком",
			Description:  "Ароматная сдобная булочка с маковой начинкой",
			Price:        decimal.NewFromInt(200),
			Category:     "Выпечка",
			Image:        "poppy-bun",
			IsVegetarian: true,
			Allergens:    []string{"глютен", "молоко"},
			Nutrition:    Nutrition{Calories: 260, Protein: 6, Carbs: 42, Fat: 8},
			PrepTime:     3,
			Status:       enum.ItemStatusActive,
		},
		{
			Name:         "Компот из сухофруктов",
			Description:  "Ароматный витаминный напиток",
			Price:        decimal.NewFromInt(150),
			Category:     "Напитки",
			Image:        "compote",
			IsVegetarian: true,
			IsVegan:      true,
			Nutrition:    Nutrition{Calories: 80, Protein: 1, Carbs: 20, Fat: 0},
			PrepTime:     2,
			Status:       enum.ItemStatusActive,
		},
	}

	for _, d := range dishes {
		if _, err := s.Create(d); err != nil {
			return err
		}
	}
	return nil
}
