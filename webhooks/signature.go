package webhooks

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// SignatureHeader is the header the platform signs webhook posts with.
const SignatureHeader = "X-Hub-Signature"

// ErrMissingSignature reports a webhook post that carried no signature
// header at all. Callers decide whether that rejects the request or, in
// test mode, is logged and waved through.
var ErrMissingSignature = errors.New("missing signature header")

// VerifySignature checks that header matches the HMAC-SHA1 of body keyed by
// secret. The header format is "<method>=<hex>"; only sha1 is accepted.
// body must be the raw request bytes exactly as received: decoding and
// re-encoding the JSON would change the byte layout and break the check.
func VerifySignature(body []byte, header, secret string) error {
	if header == "" {
		return ErrMissingSignature
	}

	method, supplied, found := strings.Cut(header, "=")
	if !found || method == "" || supplied == "" {
		return fmt.Errorf("malformed signature header %q", header)
	}
	if method != "sha1" {
		return fmt.Errorf("unsupported signature method %q", method)
	}

	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	computed := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(computed), []byte(supplied)) {
		return errors.New("signature mismatch")
	}
	return nil
}
