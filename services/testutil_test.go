package services_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/elitk/elfitness/errvalues"
	"github.com/elitk/elfitness/models"
)

// In-memory stand-ins for the persistence collaborators.

var errStore = errors.New("store error")

func dayKey(t time.Time) string { return t.Format("2006-01-02") }

type fakeNutritionStore struct {
	entries  map[string]*models.NutritionEntry // userID is implicit: one user per test
	saves    int
	failGet  bool
	failSave bool
	nextID   uint
}

func newFakeNutritionStore() *fakeNutritionStore {
	return &fakeNutritionStore{entries: make(map[string]*models.NutritionEntry)}
}

func (s *fakeNutritionStore) GetByDate(_ context.Context, _ uint, date time.Time) (*models.NutritionEntry, error) {
	if s.failGet {
		return nil, errStore
	}
	return s.entries[dayKey(date)], nil
}

func (s *fakeNutritionStore) Save(_ context.Context, entry *models.NutritionEntry) (uint, error) {
	if s.failSave {
		return 0, errStore
	}
	if entry.ID == 0 {
		s.nextID++
		entry.ID = s.nextID
	}
	for i := range entry.Meals {
		meal := &entry.Meals[i]
		if meal.ID == 0 {
			s.nextID++
			meal.ID = s.nextID
		}
		for j := range meal.Foods {
			if meal.Foods[j].ID == 0 {
				s.nextID++
				meal.Foods[j].ID = s.nextID
			}
		}
	}
	s.entries[dayKey(entry.Date)] = entry
	s.saves++
	return entry.ID, nil
}

func (s *fakeNutritionStore) ListRange(_ context.Context, _ uint, from, to time.Time) ([]models.NutritionEntry, error) {
	if s.failGet {
		return nil, errStore
	}
	var out []models.NutritionEntry
	for _, e := range s.entries {
		if e.Date.Before(from) || e.Date.After(to) {
			continue
		}
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *fakeNutritionStore) ListAll(_ context.Context, _ uint) ([]models.NutritionEntry, error) {
	if s.failGet {
		return nil, errStore
	}
	var out []models.NutritionEntry
	for _, e := range s.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *fakeNutritionStore) Delete(_ context.Context, _ uint, entryID uint) error {
	for k, e := range s.entries {
		if e.ID == entryID {
			delete(s.entries, k)
			return nil
		}
	}
	return errvalues.ErrEntryNotFound
}

type fakeFoodStore struct {
	items map[string]models.FoodItem
}

func newFakeFoodStore(items ...models.FoodItem) *fakeFoodStore {
	s := &fakeFoodStore{items: make(map[string]models.FoodItem)}
	for _, it := range items {
		s.items[it.FoodID] = it
	}
	return s
}

func (s *fakeFoodStore) GetByFoodID(_ context.Context, foodID string) (*models.FoodItem, error) {
	it, ok := s.items[foodID]
	if !ok {
		return nil, errvalues.ErrFoodNotFound
	}
	return &it, nil
}

func (s *fakeFoodStore) Search(_ context.Context, query, category string, limit int) ([]models.FoodItem, error) {
	var out []models.FoodItem
	for _, it := range s.items {
		if query != "" && !strings.Contains(strings.ToLower(it.Name), strings.ToLower(query)) {
			continue
		}
		if category != "" && it.Category != category {
			continue
		}
		out = append(out, it)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *fakeFoodStore) Create(_ context.Context, item *models.FoodItem) error {
	s.items[item.FoodID] = *item
	return nil
}

func (s *fakeFoodStore) ListCustom(_ context.Context, userID uint) ([]models.FoodItem, error) {
	var out []models.FoodItem
	for _, it := range s.items {
		if it.IsCustom && it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

type fakeGoalStore struct {
	goals   []*models.NutritionGoal
	nextID  uint
	failGet bool
}

func (s *fakeGoalStore) GetActive(_ context.Context, userID uint) (*models.NutritionGoal, error) {
	if s.failGet {
		return nil, errStore
	}
	for i := len(s.goals) - 1; i >= 0; i-- {
		if s.goals[i].UserID == userID && s.goals[i].IsActive {
			return s.goals[i], nil
		}
	}
	return nil, nil
}

func (s *fakeGoalStore) Deactivate(_ context.Context, goalID uint) error {
	for _, g := range s.goals {
		if g.ID == goalID {
			g.IsActive = false
			return nil
		}
	}
	return errStore
}

func (s *fakeGoalStore) Create(_ context.Context, goal *models.NutritionGoal) (uint, error) {
	s.nextID++
	goal.ID = s.nextID
	s.goals = append(s.goals, goal)
	return goal.ID, nil
}

type fakeWaterStore struct {
	entries []models.WaterEntry
	nextID  uint
}

func (s *fakeWaterStore) ListByDate(_ context.Context, userID uint, date time.Time) ([]models.WaterEntry, error) {
	var out []models.WaterEntry
	for _, e := range s.entries {
		if e.UserID == userID && dayKey(e.LoggedAt) == dayKey(date) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeWaterStore) Get(_ context.Context, userID, entryID uint) (*models.WaterEntry, error) {
	for _, e := range s.entries {
		if e.ID == entryID && e.UserID == userID {
			found := e
			return &found, nil
		}
	}
	return nil, errvalues.ErrWaterNotFound
}

func (s *fakeWaterStore) Add(_ context.Context, entry *models.WaterEntry) (uint, error) {
	s.nextID++
	entry.ID = s.nextID
	s.entries = append(s.entries, *entry)
	return entry.ID, nil
}

func (s *fakeWaterStore) Delete(_ context.Context, userID, entryID uint) error {
	for i, e := range s.entries {
		if e.ID == entryID && e.UserID == userID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return errvalues.ErrWaterNotFound
}
