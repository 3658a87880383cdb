// Package suggest proposes a spending category for a transaction
// description. The classifier is an external model behind a port; the
// gateway turns its free-text answer into a category id or nothing.
package suggest

import "context"

// Prediction is the raw classifier output: a free-text category label and
// a confidence in [0, 1]. The label is not a category id; mapping it onto
// the fixed table is the matcher's job.
type Prediction struct {
	Label      string
	Confidence float64
}

// Classifier is the port to the external model.
type Classifier interface {
	Classify(ctx context.Context, description string) (Prediction, error)
}
