package categories

import (
	"hash/fnv"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/ERUDITE137/shikhar-finance/internal/logging"
	"github.com/ERUDITE137/shikhar-finance/internal/models"
	"github.com/ERUDITE137/shikhar-finance/internal/parsererror"
)

// Fixed palettes for auto-created categories. A new category gets an icon and
// color picked by a hash of its name, so the same name always gets the same
// look across runs and machines.
var (
	categoryIcons  = []string{"🛒", "🍔", "⛽", "🎬", "💊", "🏠", "📱", "✈️"}
	categoryColors = []string{"#ef4444", "#f97316", "#eab308", "#22c55e", "#06b6d4", "#3b82f6", "#8b5cf6", "#ec4899"}
)

// The fallback category has a fixed look.
const (
	otherIcon  = "📁"
	otherColor = "#6b7280"
)

// Resolver maps free-form category hints to stored categories, creating new
// ones when nothing matches. Resolution never fails to produce a category:
// with no usable signal it falls back to "Other".
type Resolver struct {
	store  Store
	logger logging.Logger

	// NewID is injectable for deterministic tests.
	NewID func() string
}

// NewResolver creates a Resolver over the given store.
func NewResolver(store Store, logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Resolver{store: store, logger: logger, NewID: uuid.NewString}
}

// Resolve maps a hint to a category ID for the single-receipt path. A
// case-insensitive substring match against existing names wins; otherwise a
// new expense category named after the hint is created. An empty hint resolves
// to "Other".
func (r *Resolver) Resolve(hint string) (string, error) {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return r.resolveOther()
	}

	existing, err := r.store.List()
	if err != nil {
		return "", &parsererror.CategoryResolutionError{Hint: hint, Err: err}
	}
	if match, ok := matchSubstring(existing, hint); ok {
		return match.ID, nil
	}

	created, err := r.create(capitalize(hint), models.CategoryTypeExpense)
	if err != nil {
		return "", &parsererror.CategoryResolutionError{Hint: hint, Err: err}
	}
	return created.ID, nil
}

// ResolveForCommit maps a reviewed transaction's category signals to an ID for
// the bulk-commit path. The user's chosen name is matched exactly
// (case-insensitive); failing that the extractor's suggestion is matched the
// same way; failing both, "Other" is returned, created if missing.
func (r *Resolver) ResolveForCommit(chosenName, suggested string) (string, error) {
	existing, err := r.store.List()
	if err != nil {
		return "", &parsererror.CategoryResolutionError{Hint: chosenName, Err: err}
	}

	for _, name := range []string{chosenName, suggested} {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		for _, c := range existing {
			if strings.EqualFold(c.Name, name) {
				return c.ID, nil
			}
		}
	}

	return r.resolveOther()
}

// resolveOther returns the guaranteed fallback category, creating it with
// type "both" when it does not exist yet.
func (r *Resolver) resolveOther() (string, error) {
	existing, err := r.store.List()
	if err != nil {
		return "", &parsererror.CategoryResolutionError{Hint: models.CategoryOther, Err: err}
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, models.CategoryOther) {
			return c.ID, nil
		}
	}

	other := models.Category{
		ID:    r.NewID(),
		Name:  models.CategoryOther,
		Icon:  otherIcon,
		Color: otherColor,
		Type:  models.CategoryTypeBoth,
	}
	if err := r.store.Create(other); err != nil {
		return "", &parsererror.CategoryResolutionError{Hint: models.CategoryOther, Err: err}
	}
	r.logger.Info("Created fallback category",
		logging.Field{Key: logging.FieldCategory, Value: other.Name})
	return other.ID, nil
}

func (r *Resolver) create(name, categoryType string) (models.Category, error) {
	category := models.Category{
		ID:    r.NewID(),
		Name:  name,
		Icon:  PaletteIcon(name),
		Color: PaletteColor(name),
		Type:  categoryType,
	}
	if err := r.store.Create(category); err != nil {
		return models.Category{}, err
	}
	r.logger.Info("Created category",
		logging.Field{Key: logging.FieldCategory, Value: name})
	return category, nil
}

// matchSubstring finds the first existing category whose name contains the
// hint, or whose name the hint contains, case-insensitively.
func matchSubstring(existing []models.Category, hint string) (models.Category, bool) {
	lowerHint := strings.ToLower(hint)
	for _, c := range existing {
		lowerName := strings.ToLower(c.Name)
		if strings.Contains(lowerName, lowerHint) || strings.Contains(lowerHint, lowerName) {
			return c, true
		}
	}
	return models.Category{}, false
}

// PaletteIcon picks the icon for a category name.
func PaletteIcon(name string) string {
	return categoryIcons[paletteIndex(name, len(categoryIcons))]
}

// PaletteColor picks the color for a category name.
func PaletteColor(name string) string {
	return categoryColors[paletteIndex(name, len(categoryColors))]
}

func paletteIndex(name string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(name)))
	return int(h.Sum32() % uint32(n))
}

func capitalize(s string) string {
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
