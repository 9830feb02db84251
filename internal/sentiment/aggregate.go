// Package sentiment reduces the per-classifier probability arrays returned by
// the sentiment endpoint into one labelled verdict per classifier.
//
// Classifiers are aggregated independently; there is no cross-classifier
// fusion. A verdict's confidence always refers to the winning label, so it
// lies in [0.5, 1].
package sentiment

import (
	"errors"
	"fmt"
	"math"
	"math/big"

	"github.com/Alfex4936/nlpdash/internal/model"
)

var (
	// ErrEmptyScores signals a classifier with no scores; its mean is undefined.
	ErrEmptyScores = errors.New("sentiment: empty score array")
	// ErrScoreOutOfRange signals a score outside [0, 1] or NaN.
	ErrScoreOutOfRange = errors.New("sentiment: score out of range")
	// ErrMissingClassifier signals a classifier absent from the response.
	ErrMissingClassifier = errors.New("sentiment: missing classifier")
)

// threshold is the mean at and above which a classifier votes positive.
const threshold = 0.5

// sumPrec keeps the running sum of float64 values in [0, 1] exact.
const sumPrec = 2048

// Aggregate returns one verdict per classifier in presentation order
// (naive_bag_of_words, naive_best_words, svm).
func Aggregate(resp *model.SentimentResponse) ([]model.Verdict, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingClassifier, model.Classifiers[0])
	}
	out := make([]model.Verdict, 0, len(model.Classifiers))
	for _, c := range model.Classifiers {
		scores, ok := resp.Scores[c]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingClassifier, c)
		}
		v, err := Reduce(c, scores)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Reduce turns one classifier's scores into a verdict.
func Reduce(c model.Classifier, scores []float64) (model.Verdict, error) {
	m, err := Mean(scores)
	if err != nil {
		return model.Verdict{}, fmt.Errorf("%s: %w", c, err)
	}
	if m >= threshold {
		return model.Verdict{Classifier: c, Label: model.Positive, Confidence: m}, nil
	}
	return model.Verdict{Classifier: c, Label: model.Negative, Confidence: 1 - m}, nil
}

// Mean is the correctly rounded arithmetic mean of scores.
// The sum is accumulated exactly, so n copies of v average to exactly v.
func Mean(scores []float64) (float64, error) {
	if len(scores) == 0 {
		return 0, ErrEmptyScores
	}
	sum := new(big.Float).SetPrec(sumPrec)
	for i, s := range scores {
		if math.IsNaN(s) || s < 0 || s > 1 {
			return 0, fmt.Errorf("%w: scores[%d] = %v", ErrScoreOutOfRange, i, s)
		}
		sum.Add(sum, new(big.Float).SetPrec(sumPrec).SetFloat64(s))
	}
	n := new(big.Float).SetPrec(sumPrec).SetInt64(int64(len(scores)))
	m, _ := sum.Quo(sum, n).Float64()
	return m, nil
}
