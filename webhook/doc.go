// Package webhook verifies Parallel task webhook signatures.
//
// A delivery is signed by computing HMAC-SHA256 over
//
//	<webhook_id>.<webhook_timestamp>.<raw_request_body>
//
// with the webhook signing secret. The signature header may carry one or more
// candidate digests as "v1,<hex>", "v1=<hex>", bare "<hex>", or comma-joined
// combinations of these.
//
// # Verification
//
// A Verifier checks both the signature and the timestamp age. The two facts
// are reported separately so a replayed delivery can be told apart from a
// forged one:
//
//	v := webhook.NewVerifier(secret)
//	res, err := v.Verify(webhook.RequestFromHeader(r.Header, body))
//	if err != nil {
//		// no parseable candidate digest or a malformed timestamp
//	}
//	if !res.Valid {
//		// res.MatchedSignature and res.WithinTolerance say why
//	}
//
// The body must be the exact bytes received; re-encoding a decoded body
// changes the digest.
package webhook
