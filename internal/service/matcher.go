package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/dcidan/grocery-mate/internal/models"
)

const (
	matchCacheKey = "recipe_match:makeable"
	matchCacheTTL = 30 * time.Second
)

// MatcherService computes which recipes are fully makeable from the
// current inventory. The computation itself is pure; the service only
// fetches its two inputs and, when Redis is configured, keeps a
// short-lived cache of the result.
type MatcherService struct {
	db    *gorm.DB
	cache *redis.Client
}

// NewMatcherService creates a matcher. cache may be nil, in which case
// every call recomputes from the store.
func NewMatcherService(db *gorm.DB, cache *redis.Client) *MatcherService {
	return &MatcherService{db: db, cache: cache}
}

// FindMakeable returns the recipes whose entire required-ingredient set
// is present in the inventory with positive quantity, in the catalog's
// natural enumeration order.
func (s *MatcherService) FindMakeable(ctx context.Context) ([]models.Recipe, error) {
	if cached, ok := s.cachedResult(ctx); ok {
		return cached, nil
	}

	var available []models.Ingredient
	if err := s.db.WithContext(ctx).Where("quantity > 0").Find(&available).Error; err != nil {
		return nil, fmt.Errorf("fetching available ingredients: %w", err)
	}

	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("fetching recipe catalog: %w", err)
	}

	matches := MatchRecipes(available, recipes)
	s.storeResult(ctx, matches)
	return matches, nil
}

// MatchRecipes is the pure matching computation: a recipe matches iff
// every required ingredient name, compared case-insensitively, is
// present among the available ingredients. Amounts are deliberately not
// checked; presence alone determines a match. Recipes whose stored
// ingredient encoding cannot be decoded are skipped without aborting
// the scan.
func MatchRecipes(available []models.Ingredient, recipes []models.Recipe) []models.Recipe {
	availableSet := make(map[string]struct{}, len(available))
	for _, ing := range available {
		if ing.Quantity <= 0 {
			continue
		}
		availableSet[models.CanonicalName(ing.Name)] = struct{}{}
	}

	matches := []models.Recipe{}
	for _, recipe := range recipes {
		required, ok := decodeRequired(&recipe)
		if !ok {
			continue
		}
		if isSubset(required, availableSet) {
			matches = append(matches, recipe)
		}
	}
	return matches
}

// decodeRequired categorizes a recipe's stored encoding into a decoded
// set or a failure. A recipe that stores a valid empty list decodes to
// an empty set and therefore always matches; an undecodable encoding
// makes the recipe unmatchable.
func decodeRequired(recipe *models.Recipe) (map[string]struct{}, bool) {
	var names []string
	if err := json.Unmarshal([]byte(recipe.Ingredients), &names); err != nil {
		return nil, false
	}

	required := make(map[string]struct{}, len(names))
	for _, name := range names {
		required[models.CanonicalName(name)] = struct{}{}
	}
	return required, true
}

func isSubset(required, available map[string]struct{}) bool {
	for name := range required {
		if _, ok := available[name]; !ok {
			return false
		}
	}
	return true
}

// cachedResult loads a previously computed match set. Cache failures
// only cause a recompute, never a request failure.
func (s *MatcherService) cachedResult(ctx context.Context) ([]models.Recipe, bool) {
	if s.cache == nil {
		return nil, false
	}

	payload, err := s.cache.Get(ctx, matchCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("match cache read failed: %v", err)
		}
		return nil, false
	}

	var ids []uuid.UUID
	if err := json.Unmarshal([]byte(payload), &ids); err != nil {
		return nil, false
	}
	if len(ids) == 0 {
		return []models.Recipe{}, true
	}

	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Find(&recipes, "id IN ?", ids).Error; err != nil {
		return nil, false
	}

	byID := make(map[uuid.UUID]models.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}
	ordered := make([]models.Recipe, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			ordered = append(ordered, r)
		}
	}
	return ordered, true
}

func (s *MatcherService) storeResult(ctx context.Context, matches []models.Recipe) {
	if s.cache == nil {
		return
	}

	ids := make([]uuid.UUID, len(matches))
	for i, r := range matches {
		ids[i] = r.ID
	}
	payload, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, matchCacheKey, payload, matchCacheTTL).Err(); err != nil {
		log.Printf("match cache write failed: %v", err)
	}
}
