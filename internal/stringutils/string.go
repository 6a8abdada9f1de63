package stringutils

import (
	"cmp"
	"strings"
)

func LCase[T ~string](s T) T { return T(strings.ToLower(string(s))) }

func TrimSP[T ~string](s T) T { return T(strings.TrimSpace(string(s))) }

// CmpKVs orders two "key=value" query pairs by key, used by the optional
// query-sorting normalization flag.
func CmpKVs[T ~string](kv1, kv2 []T) int { return cmp.Compare(kv1[0], kv2[0]) }
