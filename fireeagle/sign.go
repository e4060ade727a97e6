package fireeagle

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// Sign computes the request signature for the given parameters.
//
// The service recomputes the same digest on its side, so the concatenation
// is load-bearing: the secret, then each key immediately followed by its
// value with keys in byte-ascending order and no delimiters, hashed with
// SHA-1 and hex-encoded lowercase. A "sig" key already present in params is
// never part of its own computation.
func Sign(secret string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == paramSig {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(secret)
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(params[k])
	}

	sum := sha1.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
