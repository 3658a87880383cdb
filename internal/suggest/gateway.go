package suggest

import (
	"context"
	"strings"

	"budgetwise/internal/cache"
	"budgetwise/internal/log"
)

// Suggestions below this confidence are discarded.
const minConfidence = 0.5

// Gateway wraps the classifier with the acceptance policy: empty input and
// classifier failures both mean "no suggestion", never an error to the
// caller. Results are cached by normalized description so repeated typing
// of the same text does not hit the model twice.
type Gateway struct {
	classifier Classifier
	cache      *cache.LRU[string]
	logger     *log.Logger
}

func NewGateway(classifier Classifier, resultCache *cache.LRU[string], logger *log.Logger) *Gateway {
	return &Gateway{
		classifier: classifier,
		cache:      resultCache,
		logger:     logger.WithComponent(log.ComponentSuggest),
	}
}

// Suggest returns a category id for the description, or ok=false when
// there is nothing confident to suggest.
func (g *Gateway) Suggest(ctx context.Context, description string) (string, bool) {
	description = strings.TrimSpace(description)
	if description == "" {
		return "", false
	}

	key := strings.ToLower(description)
	if id, hit := g.cache.Get(key); hit {
		return id, id != ""
	}

	prediction, err := g.classifier.Classify(ctx, description)
	if err != nil {
		g.logger.WarnContext(ctx, "Classifier failed, no suggestion",
			log.FieldDescription, description,
			log.FieldError, err)
		return "", false
	}

	categoryID := ""
	if cat, ok := MatchCategory(prediction.Label); ok && prediction.Confidence > minConfidence {
		categoryID = cat.ID
	}
	// Negative results are cached too: an unmatchable description stays
	// unmatchable for the cache's lifetime.
	g.cache.Set(key, categoryID)

	if categoryID == "" {
		g.logger.DebugContext(ctx, "No confident suggestion",
			log.FieldDescription, description,
			log.FieldConfidence, prediction.Confidence)
		return "", false
	}
	g.logger.InfoContext(ctx, "Category suggested",
		log.FieldDescription, description,
		log.FieldCategoryID, categoryID,
		log.FieldConfidence, prediction.Confidence)
	return categoryID, true
}
