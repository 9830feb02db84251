package nlpdash

import (
	"errors"

	"github.com/Alfex4936/nlpdash/internal/net"
	"github.com/Alfex4936/nlpdash/internal/parse"
	"github.com/Alfex4936/nlpdash/internal/sentiment"
)

// Error kinds, logged with every failure.
const (
	KindMalformedResponse = "malformed_response"
	KindEmptyScoreArray   = "empty_score_array"
	KindOutOfRangeScore   = "out_of_range_score"
	KindMissingClassifier = "missing_classifier"
	KindNetworkFailure    = "network_failure"
	KindUnknown           = "unknown"
)

// DefaultErrorMessage is shown when a failed analysis carries no message.
const DefaultErrorMessage = "Failed"

// ErrorKind classifies err for logging.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, parse.ErrMalformedResponse):
		return KindMalformedResponse
	case errors.Is(err, sentiment.ErrEmptyScores):
		return KindEmptyScoreArray
	case errors.Is(err, sentiment.ErrScoreOutOfRange):
		return KindOutOfRangeScore
	case errors.Is(err, sentiment.ErrMissingClassifier):
		return KindMissingClassifier
	case errors.Is(err, net.ErrNetwork):
		return KindNetworkFailure
	default:
		return KindUnknown
	}
}

// serverMessage is the message the service attached to a failed call, or "".
func serverMessage(err error) string {
	var se *net.StatusError
	if errors.As(err, &se) {
		return parse.Message(se.Body)
	}
	return ""
}

func errorMessage(err error, fallback string) string {
	if m := serverMessage(err); m != "" {
		return m
	}
	return fallback
}
