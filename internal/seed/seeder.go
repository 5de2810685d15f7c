// Package seed fills a running calorie keeper server with demo data through
// its public API.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/MKhiriev/go-calorie-keeper/internal/adapter"
	"github.com/MKhiriev/go-calorie-keeper/internal/config"
	"github.com/MKhiriev/go-calorie-keeper/internal/logger"
	"github.com/MKhiriev/go-calorie-keeper/models"
)

// Summary reports what a seeding run did.
type Summary struct {
	UserID  int64
	Created bool // account was registered by this run
	Removed int  // meals deleted before seeding
	Meals   int  // meals created
	From    time.Time
	To      time.Time
}

type Seeder struct {
	client adapter.APIClient

	credentials models.UserCredentials
	days        int

	rnd    *rand.Rand
	now    func() time.Time
	logger *logger.Logger
}

func NewSeeder(client adapter.APIClient, cfg config.SeedConfig, logger *logger.Logger) *Seeder {
	return &Seeder{
		client:      client,
		credentials: models.UserCredentials{Email: cfg.Email, Password: cfg.Password},
		days:        cfg.Days,
		rnd:         rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		now:         time.Now,
		logger:      logger,
	}
}

// Run registers the demo account (or reuses an existing one), removes its
// old meals and logs breakfast, lunch and dinner for each of the last
// s.days days.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	created, err := s.ensureAccount(ctx)
	if err != nil {
		return summary, err
	}
	summary.Created = created

	if _, err = s.client.Login(ctx, s.credentials); err != nil {
		return summary, fmt.Errorf("login as %s: %w", s.credentials.Email, err)
	}

	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		return summary, fmt.Errorf("load current user: %w", err)
	}
	summary.UserID = user.ID

	summary.Removed, err = s.clearMeals(ctx)
	if err != nil {
		return summary, err
	}

	today := s.now().UTC()
	summary.From = models.DayWindow(today.AddDate(0, 0, -s.days)).Start
	summary.To = today

	for day := 0; day < s.days; day++ {
		date := summary.From.AddDate(0, 0, day)

		for _, meal := range s.dayMeals(date) {
			if _, err = s.client.CreateMeal(ctx, meal); err != nil {
				return summary, fmt.Errorf("create %s of %s: %w", *meal.MealType, date.Format(models.DateLayout), err)
			}
			summary.Meals++
		}

		if day%10 == 0 {
			s.logger.Info().Int("day", day+1).Str("date", date.Format(models.DateLayout)).Msg("meals generated")
		}
	}

	return summary, nil
}

func (s *Seeder) ensureAccount(ctx context.Context) (bool, error) {
	_, err := s.client.Register(ctx, s.credentials)
	switch {
	case err == nil:
		s.logger.Info().Str("email", s.credentials.Email).Msg("demo account registered")
		return true, nil
	case errors.Is(err, adapter.ErrConflict):
		s.logger.Info().Str("email", s.credentials.Email).Msg("demo account exists, reusing it")
		return false, nil
	default:
		return false, fmt.Errorf("register %s: %w", s.credentials.Email, err)
	}
}

func (s *Seeder) clearMeals(ctx context.Context) (int, error) {
	meals, err := s.client.ListMeals(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("list existing meals: %w", err)
	}

	for _, meal := range meals {
		if err = s.client.DeleteMeal(ctx, meal.ID); err != nil && !errors.Is(err, adapter.ErrNotFound) {
			return 0, fmt.Errorf("delete meal %d: %w", meal.ID, err)
		}
	}

	if len(meals) > 0 {
		s.logger.Info().Int("count", len(meals)).Msg("old demo meals removed")
	}
	return len(meals), nil
}

func (s *Seeder) dayMeals(date time.Time) []models.MealCreate {
	meals := make([]models.MealCreate, 0, len(templates))
	for _, tpl := range templates {
		meals = append(meals, tpl.generate(s.rnd, date))
	}
	return meals
}
