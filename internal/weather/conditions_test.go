package weather

import "testing"

func TestSelectVideoKey(t *testing.T) {
	cases := map[string]VideoKey{
		"Light Rain":                VideoRain,
		"RAIN, OVERCAST":            VideoRain,
		"Sunny":                     VideoSun,
		"Snow showers":              VideoSnow,
		"Partially cloudy":          VideoCloud,
		"Clear":                     VideoDefault,
		"":                          VideoDefault,
		"Cloudy with sunny periods": VideoSun,  // sun outranks cloud
		"Snow, Rain":                VideoRain, // rain outranks snow even when later in the text
		"Overcast, cloud then sun":  VideoSun,
	}

	for in, want := range cases {
		if got := SelectVideoKey(in); got != want {
			t.Errorf("SelectVideoKey(%q) = %q, want %q", in, got, want)
		}
	}
}
