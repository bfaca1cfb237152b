package render

import (
	"mime"
	"strconv"
	"strings"
)

// mediaRange is one entry of an Accept header.
type mediaRange struct {
	mediaType string
	q         float64
	index     int
}

// parseAccept splits an Accept header into media ranges. Malformed entries
// are skipped; a missing or unparsable q counts as 1.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for i, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		mediaType, params, err := mime.ParseMediaType(part)
		if err != nil || !strings.Contains(mediaType, "/") {
			continue
		}
		q := 1.0
		if raw, ok := params["q"]; ok {
			if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed >= 0 && parsed <= 1 {
				q = parsed
			}
		}
		ranges = append(ranges, mediaRange{mediaType: mediaType, q: q, index: i})
	}
	return ranges
}

// match returns the most specific range covering mediaType, with its
// specificity: 2 exact, 1 type/*, 0 */*.
func match(ranges []mediaRange, mediaType string) (mediaRange, bool) {
	major, _, _ := strings.Cut(mediaType, "/")
	best, bestRank, found := mediaRange{}, -1, false
	for _, r := range ranges {
		rank := -1
		switch {
		case r.mediaType == mediaType:
			rank = 2
		case r.mediaType == major+"/*":
			rank = 1
		case r.mediaType == "*/*":
			rank = 0
		}
		if rank > bestRank {
			best, bestRank, found = r, rank, true
		}
	}
	return best, found
}
