package webhook

import (
	"crypto/hmac"
	"net/http"
	"strconv"
	"time"

	"github.com/erraggy/paralint/linterrors"
)

// DefaultTolerance is the replay window applied by NewVerifier.
const DefaultTolerance = 300 * time.Second

// Header names carrying the delivery metadata.
const (
	HeaderWebhookID = "parallel-webhook-id"
	HeaderTimestamp = "parallel-webhook-timestamp"
	HeaderSignature = "parallel-webhook-signature"
)

// Request holds the inputs of one verification.
type Request struct {
	// WebhookID is the parallel-webhook-id header value
	WebhookID string
	// Timestamp is the parallel-webhook-timestamp header value, in unix
	// epoch seconds
	Timestamp string
	// Body is the raw request body
	Body []byte
	// SignatureHeader is the parallel-webhook-signature header value
	SignatureHeader string
}

// RequestFromHeader builds a Request from received HTTP headers and the raw
// body.
func RequestFromHeader(h http.Header, body []byte) Request {
	return Request{
		WebhookID:       h.Get(HeaderWebhookID),
		Timestamp:       h.Get(HeaderTimestamp),
		Body:            body,
		SignatureHeader: h.Get(HeaderSignature),
	}
}

// Result reports the outcome of a verification.
type Result struct {
	// Valid is true only when the signature matched and the timestamp is
	// within tolerance
	Valid bool `json:"valid" yaml:"valid"`
	// MatchedSignature is true when any candidate digest matched
	MatchedSignature bool `json:"matched_signature" yaml:"matched_signature"`
	// WithinTolerance is true when the timestamp age is within the window
	WithinTolerance bool `json:"within_tolerance" yaml:"within_tolerance"`
	// AgeSeconds is the absolute distance between now and the timestamp
	AgeSeconds int64 `json:"age_seconds" yaml:"age_seconds"`
	// CandidateCount is the number of distinct candidate digests parsed
	CandidateCount int `json:"candidate_count" yaml:"candidate_count"`
	// ExpectedHex is the digest computed from the request
	ExpectedHex string `json:"expected_hex" yaml:"expected_hex"`
}

// Verifier checks webhook signatures. It holds no per-call state and may be
// shared across goroutines.
type Verifier struct {
	// Secret is the webhook signing secret
	Secret string
	// Tolerance is the maximum accepted timestamp age in either direction
	Tolerance time.Duration
	// Now returns the current time; nil means time.Now
	Now func() time.Time
}

// NewVerifier returns a Verifier for secret using DefaultTolerance.
func NewVerifier(secret string) *Verifier {
	return &Verifier{
		Secret:    secret,
		Tolerance: DefaultTolerance,
	}
}

// Verify checks req. It returns a *linterrors.SignatureError when the
// signature header yields no candidate digest or the timestamp is not an
// integer; otherwise the outcome is in the Result.
func (v *Verifier) Verify(req Request) (*Result, error) {
	candidates := ParseSignatureHeader(req.SignatureHeader)
	if len(candidates) == 0 {
		return nil, &linterrors.SignatureError{
			Field:   "signature_header",
			Message: "could not parse any candidate hex signatures",
		}
	}

	ts, err := strconv.ParseInt(req.Timestamp, 10, 64)
	if err != nil {
		return nil, &linterrors.SignatureError{
			Field:   "timestamp",
			Message: "must be a unix epoch integer",
			Cause:   err,
		}
	}

	now := time.Now
	if v.Now != nil {
		now = v.Now
	}
	age := now().Unix() - ts
	if age < 0 {
		age = -age
	}

	expected := ComputeSignature(v.Secret, req.WebhookID, req.Timestamp, req.Body)
	matched := false
	for _, c := range candidates {
		if hmac.Equal([]byte(expected), []byte(c)) {
			matched = true
		}
	}
	within := age <= int64(v.Tolerance/time.Second)

	return &Result{
		Valid:            matched && within,
		MatchedSignature: matched,
		WithinTolerance:  within,
		AgeSeconds:       age,
		CandidateCount:   len(candidates),
		ExpectedHex:      expected,
	}, nil
}
