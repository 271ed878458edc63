package sun

import (
	"fmt"
	"math"
	"time"
)

// Location is a point on the earth in decimal degrees.
type Location struct {
	Latitude  float64
	Longitude float64
}

const (
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi

	// Zenith angles in degrees. ZenithOfficial is the sun's upper limb on
	// the horizon; ZenithLight has the sun 2° above it.
	ZenithLight        = 88
	ZenithOfficial     = 90 + 50.0/60
	ZenithCivil        = 96
	ZenithNautical     = 102
	ZenithAstronomical = 108
)

// Valid reports whether the coordinates are within [-90,90] x [-180,180].
func (loc Location) Valid() bool {
	return loc.Latitude >= -90 && loc.Latitude <= 90 &&
		loc.Longitude >= -180 && loc.Longitude <= 180
}

func (loc Location) String() string {
	return fmt.Sprintf("%.6f,%.6f", loc.Latitude, loc.Longitude)
}

// EventKind classifies the result of a sunrise or sunset calculation.
type EventKind int

const (
	EventSunrise EventKind = iota
	EventSunset
	// EventPolarDay means the sun does not set on that day.
	EventPolarDay
	// EventPolarNight means the sun does not rise on that day.
	EventPolarNight
)

func (k EventKind) String() string {
	switch k {
	case EventSunrise:
		return "Sunrise"
	case EventSunset:
		return "Sunset"
	case EventPolarDay:
		return "PolarDay"
	case EventPolarNight:
		return "PolarNight"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a calculated sunrise or sunset. For the polar kinds At is
// only a placeholder (midnight UTC of the requested date).
type Event struct {
	At   time.Time
	Kind EventKind
}

func (ev Event) IsPolar() bool {
	return ev.Kind == EventPolarDay || ev.Kind == EventPolarNight
}

// Sunrise calculates the official sunrise on day d.
func (loc Location) Sunrise(d Date) Event {
	return loc.calculate(d, ZenithOfficial, true)
}

// Sunset calculates the official sunset on day d. For locations far from
// Greenwich the instant may fall on the previous or next UTC day.
func (loc Location) Sunset(d Date) Event {
	return loc.calculate(d, ZenithOfficial, false)
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

func normalizeHours(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	return h
}

func (loc Location) calculate(d Date, zenith float64, sunrise bool) Event {
	// Sunrise/Sunset algorithm from the Almanac for Computers, 1990,
	// Nautical Almanac Office, United States Naval Observatory.
	d.mustBeValid()
	day := float64(d.YearDay())

	// convert the longitude to hour value and calculate an approximate time
	lnHour := loc.Longitude / 15
	var t float64
	if sunrise {
		t = day + ((6 - lnHour) / 24)
	} else {
		t = day + ((18 - lnHour) / 24)
	}

	// calculate the Sun's mean anomaly
	M := (0.9856 * t) - 3.289

	// calculate the Sun's true longitude
	L := M + (1.916 * math.Sin(M*DegToRad)) + (0.020 * math.Sin(2*M*DegToRad)) + 282.634
	L = normalizeAngle(L)

	// calculate the Sun's right ascension
	RA := normalizeAngle(RadToDeg * math.Atan(0.91764*math.Tan(L*DegToRad)))

	// right ascension value needs to be in the same quadrant as L
	Lquadrant := math.Floor(L/90) * 90
	RAquadrant := math.Floor(RA/90) * 90
	RA = RA + (Lquadrant - RAquadrant)

	// right ascension value needs to be converted into hours
	RA /= 15

	// calculate the Sun's declination
	sinDec := 0.39782 * math.Sin(L*DegToRad)
	cosDec := math.Cos(math.Asin(sinDec))

	// calculate the Sun's local hour angle
	cosH := (math.Cos(zenith*DegToRad) - (sinDec * math.Sin(loc.Latitude*DegToRad))) / (cosDec * math.Cos(loc.Latitude*DegToRad))
	switch {
	case cosH < -1:
		return Event{At: d.Midnight(), Kind: EventPolarDay}
	case cosH > 1:
		return Event{At: d.Midnight(), Kind: EventPolarNight}
	}

	var H float64
	if sunrise {
		H = 360 - RadToDeg*math.Acos(cosH)
	} else {
		H = RadToDeg * math.Acos(cosH)
	}
	H /= 15

	// calculate local mean time of rising/setting
	T := normalizeHours(H + RA - (0.06571 * t) - 6.622)

	// adjust back to UTC, UT outside [0,24) lands on a neighbouring day
	UT := T - lnHour
	if UT >= 24 {
		d = d.AddDays(1)
	} else if UT < 0 {
		d = d.AddDays(-1)
	}
	UT = normalizeHours(UT)

	seconds := time.Duration(math.Floor(UT*3600)) * time.Second
	kind := EventSunset
	if sunrise {
		kind = EventSunrise
	}
	return Event{At: d.Midnight().Add(seconds), Kind: kind}
}
