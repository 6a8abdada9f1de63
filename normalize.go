package urlcore

import (
	"sort"
	"strings"

	"github.com/go-urlcore/urlcore/internal/stringutils"
)

// applyNormalizeFlags rewrites output (and the offsets in parsed) per
// the requested optional flags. It is applied once, after the base
// canonicalization has already produced a spec-conformant string —
// these flags only ever narrow or reorder already-canonical bytes, so
// they cannot turn a valid canonicalization into an invalid one.
func applyNormalizeFlags(output string, parsed Parsed, flags NormalizeFlags) (string, Parsed) {
	if flags&CollapseDuplicateSlashes != 0 {
		output, parsed = collapseDuplicateSlashes(output, parsed)
	}
	if flags&SortQueryParams != 0 {
		output, parsed = sortQueryParams(output, parsed)
	}
	return output, parsed
}

func shiftAfter(parsed *Parsed, cutoff, delta int) {
	for _, c := range []*Component{&parsed.Username, &parsed.Password, &parsed.Host, &parsed.Port, &parsed.Path, &parsed.Query, &parsed.Ref} {
		if c.IsValid() && c.Begin >= cutoff {
			c.Begin += delta
		}
	}
}

func collapseDuplicateSlashes(output string, parsed Parsed) (string, Parsed) {
	if !parsed.Path.IsValid() || parsed.Path.Len == 0 {
		return output, parsed
	}
	old := output[parsed.Path.Begin:parsed.Path.End()]
	var b strings.Builder
	b.Grow(len(old))
	prevSlash := false
	for i := 0; i < len(old); i++ {
		c := old[i]
		if c == '/' {
			if prevSlash {
				continue
			}
			prevSlash = true
		} else {
			prevSlash = false
		}
		b.WriteByte(c)
	}
	collapsed := b.String()
	if collapsed == old {
		return output, parsed
	}

	oldEnd := parsed.Path.End()
	delta := len(collapsed) - len(old)
	newOutput := output[:parsed.Path.Begin] + collapsed + output[oldEnd:]
	parsed.Path.Len = len(collapsed)
	shiftAfter(&parsed, oldEnd, delta)
	return newOutput, parsed
}

func sortQueryParams(output string, parsed Parsed) (string, Parsed) {
	if !parsed.Query.IsValid() || parsed.Query.Len == 0 {
		return output, parsed
	}
	old := output[parsed.Query.Begin:parsed.Query.End()]
	rawPairs := strings.Split(old, "&")
	type entry struct {
		pair string
		kv   [2]string
	}
	entries := make([]entry, len(rawPairs))
	for i, pair := range rawPairs {
		entries[i] = entry{pair: pair, kv: splitKV(pair)}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return stringutils.CmpKVs(entries[i].kv[:], entries[j].kv[:]) < 0
	})
	pairs := make([]string, len(entries))
	for i, e := range entries {
		pairs[i] = e.pair
	}
	sorted := strings.Join(pairs, "&")
	if sorted == old {
		return output, parsed
	}

	oldEnd := parsed.Query.End()
	delta := len(sorted) - len(old)
	newOutput := output[:parsed.Query.Begin] + sorted + output[oldEnd:]
	parsed.Query.Len = len(sorted)
	shiftAfter(&parsed, oldEnd, delta)
	return newOutput, parsed
}

func splitKV(pair string) [2]string {
	if i := strings.IndexByte(pair, '='); i >= 0 {
		return [2]string{pair[:i], pair[i+1:]}
	}
	return [2]string{pair, ""}
}
