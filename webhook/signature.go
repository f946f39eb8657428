package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"

	"github.com/erraggy/paralint/internal/stringutil"
)

// ComputeSignature returns the lowercase hex HMAC-SHA256 of
// "<webhookID>.<timestamp>.<body>" keyed with secret. The timestamp is used
// exactly as received.
func ComputeSignature(secret, webhookID, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(webhookID + "." + timestamp + "."))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// ParseSignatureHeader extracts the candidate hex digests from a signature
// header value. Forms are tried in order and the first that yields
// candidates wins:
//
//  1. key=value tokens whose key starts with "v" (e.g., "v1=<hex>")
//  2. a leading version token followed only by digests ("v1,<hex>,<hex>")
//  3. a list made up only of digests
//
// Digests are lowercased and de-duplicated in first-seen order. A value is a
// digest when it is hex and at least 32 characters long. The result is nil
// when nothing parses.
func ParseSignatureHeader(header string) []string {
	var tokens []string
	for t := range strings.SplitSeq(header, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		return nil
	}

	var keyed []string
	for _, t := range tokens {
		key, value, ok := strings.Cut(t, "=")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(key)), "v") && stringutil.IsHexDigest(value) {
			keyed = append(keyed, value)
		}
	}
	if len(keyed) > 0 {
		return dedupeLower(keyed)
	}

	if strings.HasPrefix(strings.ToLower(tokens[0]), "v") && allHex(tokens[1:]) {
		return dedupeLower(tokens[1:])
	}
	if allHex(tokens) {
		return dedupeLower(tokens)
	}
	return nil
}

func allHex(tokens []string) bool {
	for _, t := range tokens {
		if !stringutil.IsHexDigest(t) {
			return false
		}
	}
	return true
}

func dedupeLower(values []string) []string {
	var out []string
	for _, v := range values {
		v = strings.ToLower(v)
		if !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}
