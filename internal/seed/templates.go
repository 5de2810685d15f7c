package seed

import (
	"math/rand/v2"
	"time"

	"github.com/MKhiriev/go-calorie-keeper/models"
)

// span is an inclusive integer range.
type span struct{ min, max int }

func (s span) pick(rnd *rand.Rand) float64 {
	return float64(s.min + rnd.IntN(s.max-s.min+1))
}

type mealTemplate struct {
	mealType     string
	hour         int
	names        []string
	descriptions []string

	calories, proteins, carbohydrates, fats, fiber span
}

// templates are generated in this order for every day.
var templates = []mealTemplate{
	{
		mealType: models.MealTypeBreakfast,
		hour:     8,
		names:    []string{"Breakfast", "Morning meal", "Early bite"},
		descriptions: []string{
			"Greek yogurt with fruit", "Omelette, avocado and toast", "Cereal, milk and banana",
			"Protein shake with oats", "Tea, rusks and jam", "Pancakes, maple syrup and bacon",
			"Chocolate croissant and latte", "Smoothie bowl with granola", "Toast, butter and jam",
			"Scrambled eggs with salmon",
		},
		calories: span{250, 600}, proteins: span{15, 40}, carbohydrates: span{30, 80},
		fats: span{8, 35}, fiber: span{5, 15},
	},
	{
		mealType: models.MealTypeLunch,
		hour:     13,
		names:    []string{"Lunch", "Midday meal", "Lunch break"},
		descriptions: []string{
			"Grilled chicken, rice and vegetables", "Burger and fries", "Mixed salad with lentils",
			"Pasta carbonara and salad", "White fish, basmati rice and vegetables",
			"Margherita pizza and soda", "Nicoise salad and baguette", "Quiche lorraine and salad",
			"Sushi and miso soup", "Tacos with guacamole", "Mushroom risotto",
		},
		calories: span{450, 850}, proteins: span{25, 55}, carbohydrates: span{50, 100},
		fats: span{15, 45}, fiber: span{8, 25},
	},
	{
		mealType: models.MealTypeDinner,
		hour:     19,
		names:    []string{"Dinner", "Supper", "Evening meal"},
		descriptions: []string{
			"Vegetable soup and wholemeal bread", "Salmon, quinoa and broccoli", "Protein smoothie and nuts",
			"Steak, potatoes and green beans", "Vegetable curry with brown rice", "Miso soup and sushi",
			"Lasagne and green salad", "Roast chicken and vegetables", "Seafood pasta",
			"Mixed salad with cheese", "French onion soup with croutons",
		},
		calories: span{350, 700}, proteins: span{20, 50}, carbohydrates: span{40, 80},
		fats: span{10, 35}, fiber: span{8, 22},
	},
}

func (t mealTemplate) generate(rnd *rand.Rand, day time.Time) models.MealCreate {
	name := t.names[rnd.IntN(len(t.names))]
	description := t.descriptions[rnd.IntN(len(t.descriptions))]
	mealType := t.mealType

	calories := t.calories.pick(rnd)
	proteins := t.proteins.pick(rnd)
	carbohydrates := t.carbohydrates.pick(rnd)
	fats := t.fats.pick(rnd)
	fiber := t.fiber.pick(rnd)

	date := models.NewNaiveTime(time.Date(day.Year(), day.Month(), day.Day(), t.hour, 0, 0, 0, time.UTC))

	return models.MealCreate{
		Name:          &name,
		Description:   &description,
		Calories:      &calories,
		Proteins:      &proteins,
		Carbohydrates: &carbohydrates,
		Fats:          &fats,
		Fiber:         &fiber,
		MealType:      &mealType,
		Date:          &date,
	}
}
