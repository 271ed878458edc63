package sun

import (
	"testing"

	gosunrise "github.com/nathan-osman/go-sunrise"
	"github.com/stretchr/testify/assert"
)

// Compare against an independent implementation of the sunrise equation.
func TestAgainstSunriseEquation(t *testing.T) {
	for _, tt := range windowTests {
		if tt.loc.Latitude > 60 || tt.loc.Latitude < -60 {
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			rise, set := gosunrise.SunriseSunset(tt.loc.Latitude, tt.loc.Longitude, tt.date.Year, tt.date.Month, tt.date.Day)
			w := tt.loc.Window(tt.date)
			assert.WithinDuration(t, rise, w.Sunrise, tolerance)
			assert.WithinDuration(t, set, w.Sunset, tolerance)
		})
	}
}
