package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"sessionpay/internal/controller/apperror"
)

// SignatureHeader carries the delivery timestamp and HMAC of the body, in
// the form "t=<unix>,v1=<hex hmac-sha256(t + "." + body)>".
const SignatureHeader = "X-Provider-Signature"

const DefaultTolerance = 5 * time.Minute

// Verifier authenticates inbound webhook requests. Nothing in a request is
// trusted until Verify returns nil.
type Verifier struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

func NewVerifier(secret string, tolerance time.Duration) *Verifier {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Verifier{secret: []byte(secret), tolerance: tolerance, now: time.Now}
}

// Verify checks the signature header against the exact raw body. The
// timestamp is part of the signed message, so replaying an old capture with
// a fresh timestamp breaks the MAC and reusing the old timestamp breaks the
// tolerance window.
func (v *Verifier) Verify(header string, body []byte) error {
	ts, candidates, err := parseSignatureHeader(header)
	if err != nil {
		return err
	}

	age := v.now().Sub(time.Unix(ts, 0))
	if age > v.tolerance || age < -v.tolerance {
		return apperror.New(apperror.KindAuthentication, "signature timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(strconv.FormatInt(ts, 10)))
	mac.Write([]byte("."))
	mac.Write(body)
	expected := mac.Sum(nil)

	for _, candidate := range candidates {
		sig, err := hex.DecodeString(candidate)
		if err != nil {
			continue
		}
		if hmac.Equal(sig, expected) {
			return nil
		}
	}
	return apperror.New(apperror.KindAuthentication, "signature mismatch")
}

func parseSignatureHeader(header string) (ts int64, candidates []string, err error) {
	if header == "" {
		return 0, nil, apperror.New(apperror.KindAuthentication, "missing signature header")
	}

	sawTimestamp := false
	for _, part := range strings.Split(header, ",") {
		k, val, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch k {
		case "t":
			parsed, parseErr := strconv.ParseInt(val, 10, 64)
			if parseErr != nil {
				return 0, nil, apperror.New(apperror.KindAuthentication, "malformed signature timestamp")
			}
			ts = parsed
			sawTimestamp = true
		case "v1":
			candidates = append(candidates, val)
		}
	}

	if !sawTimestamp || len(candidates) == 0 {
		return 0, nil, apperror.New(apperror.KindAuthentication, "malformed signature header")
	}
	return ts, candidates, nil
}
