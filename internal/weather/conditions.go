package weather

import "regexp"

// VideoKey identifies the background video shown for a set of conditions.
type VideoKey string

const (
	VideoRain    VideoKey = "rain"
	VideoSun     VideoKey = "sun"
	VideoSnow    VideoKey = "snow"
	VideoCloud   VideoKey = "cloud"
	VideoDefault VideoKey = "default"
)

type conditionPattern struct {
	re  *regexp.Regexp
	key VideoKey
}

// Checked in order; the first pattern found anywhere in the text wins.
var conditionPatterns = []conditionPattern{
	{regexp.MustCompile(`(?i)rain`), VideoRain},
	{regexp.MustCompile(`(?i)sun`), VideoSun},
	{regexp.MustCompile(`(?i)snow`), VideoSnow},
	{regexp.MustCompile(`(?i)cloud`), VideoCloud},
}

// SelectVideoKey maps a free-text conditions description to a background video.
func SelectVideoKey(conditions string) VideoKey {
	for _, p := range conditionPatterns {
		if p.re.MatchString(conditions) {
			return p.key
		}
	}
	return VideoDefault
}
