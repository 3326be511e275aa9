package consume

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
)

// baseKeyPattern matches the object keys of MRMS base-level reflectivity
// volumes and captures their YYYYMMDD-HHMMSS timestamp.
var baseKeyPattern = regexp.MustCompile(`MergedReflectivityQC_00\.50[^\s"']*_(\d{8}-\d{6})\.grib2\.gz`)

// Timestamps extracts the MRMS volume timestamps referenced anywhere in a raw
// notification body. Bodies vary with the publisher: plain key listings, S3
// event JSON, or JSON with further JSON escaped inside string fields; the
// whole body and every nested string are scanned. The result is deduplicated
// and sorted.
func Timestamps(body string) []string {
	seen := map[string]struct{}{}
	matchInto(body, seen)

	var v any
	if err := json.Unmarshal([]byte(body), &v); err == nil {
		collectStrings(v, seen)
	}

	out := make([]string, 0, len(seen))
	for ts := range seen {
		out = append(out, ts)
	}
	sort.Strings(out)

	return out
}

func matchInto(s string, seen map[string]struct{}) {
	for _, m := range baseKeyPattern.FindAllStringSubmatch(s, -1) {
		seen[m[1]] = struct{}{}
	}
}

func collectStrings(v any, seen map[string]struct{}) {
	switch t := v.(type) {
	case string:
		matchInto(t, seen)
		if trimmed := strings.TrimSpace(t); strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
			var inner any
			if err := json.Unmarshal([]byte(t), &inner); err == nil {
				collectStrings(inner, seen)
			}
		}
	case []any:
		for _, item := range t {
			collectStrings(item, seen)
		}
	case map[string]any:
		for _, item := range t {
			collectStrings(item, seen)
		}
	}
}
