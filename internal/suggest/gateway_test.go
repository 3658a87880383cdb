package suggest

import (
	"context"
	"errors"
	"testing"
	"time"

	"budgetwise/internal/cache"
	"budgetwise/internal/log"
)

type fakeClassifier struct {
	prediction Prediction
	err        error
	calls      int
}

func (f *fakeClassifier) Classify(ctx context.Context, description string) (Prediction, error) {
	f.calls++
	return f.prediction, f.err
}

func newTestGateway(classifier Classifier) *Gateway {
	return NewGateway(classifier, cache.NewLRU[string](16, time.Minute), log.New(log.DefaultConfig()))
}

func TestGatewaySuggest(t *testing.T) {
	cases := []struct {
		name        string
		description string
		prediction  Prediction
		err         error
		wantID      string
		wantOK      bool
	}{
		{
			name:        "confident match",
			description: "lunch at a diner",
			prediction:  Prediction{Label: "Food", Confidence: 0.9},
			wantID:      "food",
			wantOK:      true,
		},
		{
			name:        "below threshold",
			description: "something vague",
			prediction:  Prediction{Label: "Food", Confidence: 0.5},
			wantOK:      false,
		},
		{
			name:        "unmatchable label",
			description: "quantum flux",
			prediction:  Prediction{Label: "Astrophysics", Confidence: 0.99},
			wantOK:      false,
		},
		{
			name:        "classifier error",
			description: "lunch",
			err:         errors.New("model unavailable"),
			wantOK:      false,
		},
		{
			name:        "empty input",
			description: "   ",
			wantOK:      false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGateway(&fakeClassifier{prediction: tc.prediction, err: tc.err})
			id, ok := g.Suggest(context.Background(), tc.description)
			if ok != tc.wantOK || id != tc.wantID {
				t.Fatalf("Suggest(%q) = (%q, %v), want (%q, %v)",
					tc.description, id, ok, tc.wantID, tc.wantOK)
			}
		})
	}
}

func TestGatewayCachesResults(t *testing.T) {
	fake := &fakeClassifier{prediction: Prediction{Label: "Food", Confidence: 0.9}}
	g := newTestGateway(fake)
	ctx := context.Background()

	g.Suggest(ctx, "Lunch")
	g.Suggest(ctx, "lunch") // same key after normalization
	g.Suggest(ctx, "  lunch  ")

	if fake.calls != 1 {
		t.Fatalf("classifier called %d times, want 1", fake.calls)
	}
}

func TestGatewayCachesNegativeResults(t *testing.T) {
	fake := &fakeClassifier{prediction: Prediction{Label: "nonsense", Confidence: 0.99}}
	g := newTestGateway(fake)
	ctx := context.Background()

	if _, ok := g.Suggest(ctx, "gibberish"); ok {
		t.Fatalf("unmatchable label must yield no suggestion")
	}
	if _, ok := g.Suggest(ctx, "gibberish"); ok {
		t.Fatalf("cached negative must stay negative")
	}
	if fake.calls != 1 {
		t.Fatalf("classifier called %d times, want 1", fake.calls)
	}
}

func TestGatewayEmptyInputSkipsClassifier(t *testing.T) {
	fake := &fakeClassifier{}
	g := newTestGateway(fake)

	g.Suggest(context.Background(), "")
	if fake.calls != 0 {
		t.Fatalf("empty input must not reach the classifier")
	}
}
