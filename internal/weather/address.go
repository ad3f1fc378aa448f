package weather

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minSegmentLen is the shortest address segment kept by CleanAddress.
const minSegmentLen = 3

var (
	integerSegment = regexp.MustCompile(`^\d+$`)
	decimalSegment = regexp.MustCompile(`^[-+]?\d+(\.\d+)?$`)
)

// CleanAddress reduces a provider's resolved address to a short "Place, Region"
// form. Postal codes, raw coordinates and very short segments are dropped and
// the last two remaining segments are kept.
func CleanAddress(full string) string {
	var kept []string
	for _, seg := range strings.Split(full, ",") {
		seg = strings.TrimSpace(seg)
		if utf8.RuneCountInString(seg) < minSegmentLen {
			continue
		}
		if integerSegment.MatchString(seg) || decimalSegment.MatchString(seg) {
			continue
		}
		kept = append(kept, seg)
	}
	if len(kept) > 2 {
		kept = kept[len(kept)-2:]
	}
	return strings.Join(kept, ", ")
}
