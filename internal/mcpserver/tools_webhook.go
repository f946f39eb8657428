package mcpserver

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/erraggy/paralint/webhook"
)

type webhookInput struct {
	Secret           string `json:"secret"                      jsonschema:"Webhook signing secret"`
	WebhookID        string `json:"webhook_id"                  jsonschema:"parallel-webhook-id header value"`
	Timestamp        string `json:"timestamp"                   jsonschema:"parallel-webhook-timestamp header value (unix epoch seconds)"`
	SignatureHeader  string `json:"signature_header"            jsonschema:"parallel-webhook-signature header value"`
	Body             string `json:"body"                        jsonschema:"Raw request body, exactly as received"`
	ToleranceSeconds *int   `json:"tolerance_seconds,omitempty" jsonschema:"Replay tolerance in seconds (default 300)"`
	Now              *int64 `json:"now,omitempty"               jsonschema:"Override the current unix epoch seconds"`
}

type webhookOutput struct {
	Valid            bool   `json:"valid"`
	MatchedSignature bool   `json:"matched_signature"`
	WithinTolerance  bool   `json:"within_tolerance"`
	AgeSeconds       int64  `json:"age_seconds"`
	CandidateCount   int    `json:"candidate_count"`
	ExpectedHex      string `json:"expected_hex,omitempty"`
}

func handleVerifyWebhook(_ context.Context, _ *mcp.CallToolRequest, input webhookInput) (*mcp.CallToolResult, webhookOutput, error) {
	v := webhook.NewVerifier(input.Secret)
	if input.ToleranceSeconds != nil {
		v.Tolerance = time.Duration(*input.ToleranceSeconds) * time.Second
	}
	if input.Now != nil {
		now := time.Unix(*input.Now, 0)
		v.Now = func() time.Time { return now }
	}

	result, err := v.Verify(webhook.Request{
		WebhookID:       input.WebhookID,
		Timestamp:       input.Timestamp,
		Body:            []byte(input.Body),
		SignatureHeader: input.SignatureHeader,
	})
	if err != nil {
		return errResult(err), webhookOutput{}, nil
	}
	logger.Debug("webhook tool call",
		zap.Bool("valid", result.Valid),
		zap.Int("candidates", result.CandidateCount),
	)

	output := webhookOutput{
		Valid:            result.Valid,
		MatchedSignature: result.MatchedSignature,
		WithinTolerance:  result.WithinTolerance,
		AgeSeconds:       result.AgeSeconds,
		CandidateCount:   result.CandidateCount,
	}
	// The expected digest only helps when diagnosing a failure.
	if !result.Valid {
		output.ExpectedHex = result.ExpectedHex
	}
	return nil, output, nil
}
