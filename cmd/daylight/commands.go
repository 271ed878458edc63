package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/barnybug/daylight/config"
	"github.com/barnybug/daylight/pubsub/stream"
	"github.com/barnybug/daylight/services"
	"github.com/barnybug/daylight/services/earth"
	"github.com/barnybug/daylight/sun"
	"github.com/barnybug/daylight/util"
	"github.com/pkg/errors"
)

var zeniths = map[string]float64{
	"light":        sun.ZenithLight,
	"official":     sun.ZenithOfficial,
	"civil":        sun.ZenithCivil,
	"nautical":     sun.ZenithNautical,
	"astronomical": sun.ZenithAstronomical,
}

// resolvePlace picks the place from lat=/lon= arguments if given, else
// from the place= argument looked up in the config.
func resolvePlace(conf *config.Config, args util.Args) (config.Place, error) {
	lat, hasLat, err := args.Float("lat")
	if err != nil {
		return config.Place{}, err
	}
	lon, hasLon, err := args.Float("lon")
	if err != nil {
		return config.Place{}, err
	}

	var place config.Place
	switch {
	case hasLat && hasLon:
		place = config.Place{
			Name:     "custom",
			Location: sun.Location{Latitude: lat, Longitude: lon},
			Offset:   util.SolarOffset(lon),
		}
		if !place.Location.Valid() {
			return place, errors.Errorf("coordinates %s out of range", place.Location)
		}
	case hasLat || hasLon:
		return place, errors.New("lat and lon must be given together")
	default:
		name := args.String("place", "")
		if name == "" && conf.Earth == (config.PlaceConf{}) {
			return place, errors.Errorf("no place given: pass lat= and lon=, or configure earth in %s", config.ConfigPath("daylight.yml"))
		}
		place, err = conf.Place(name)
		if err != nil {
			return place, err
		}
	}

	if s, ok := args["offset"]; ok {
		place.Offset, err = util.ParseOffset(s)
		if err != nil {
			return place, err
		}
	}
	return place, nil
}

func zone(offset int) *time.Location {
	return time.FixedZone(util.FormatOffset(offset), offset)
}

func window(w io.Writer, conf *config.Config, args util.Args, now time.Time) error {
	place, err := resolvePlace(conf, args)
	if err != nil {
		return err
	}

	d := sun.DateOf(now.Add(time.Duration(place.Offset) * time.Second))
	if s, ok := args["date"]; ok {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return errors.Errorf("invalid date %q", s)
		}
		d = sun.DateOf(t)
	}

	name := args.String("zenith", "official")
	zenith, ok := zeniths[name]
	if !ok {
		return errors.Errorf("unknown zenith %q", name)
	}

	win := place.Location.Twilight(d, zenith)
	tz := zone(place.Offset)
	fmt.Fprintf(w, "place:    %s\n", place)
	fmt.Fprintf(w, "date:     %s\n", d)
	switch {
	case win.IsPolarDay():
		fmt.Fprintln(w, "polar day")
	case win.IsPolarNight():
		fmt.Fprintln(w, "polar night")
	default:
		fmt.Fprintf(w, "sunrise:  %s\n", win.Sunrise.In(tz).Format(time.RFC3339))
		fmt.Fprintf(w, "sunset:   %s\n", win.Sunset.In(tz).Format(time.RFC3339))
		fmt.Fprintf(w, "daylight: %s\n", util.FriendlyDuration(win.Daylight()))
	}
	return nil
}

func phase(w io.Writer, conf *config.Config, args util.Args, now time.Time) error {
	place, err := resolvePlace(conf, args)
	if err != nil {
		return err
	}
	at, err := util.ParseInstant(now, args.String("at", "now"))
	if err != nil {
		return err
	}

	phase, next := place.Location.NextPhase(at, place.Offset)
	tz := zone(place.Offset)
	fmt.Fprintf(w, "place: %s\n", place)
	fmt.Fprintf(w, "at:    %s\n", at.In(tz).Format(time.RFC3339))
	fmt.Fprintf(w, "phase: %s\n", phase)
	label := "next: "
	if phase == sun.PolarDay || phase == sun.PolarNight {
		label = "check:"
	}
	fmt.Fprintf(w, "%s %s (in %s)\n", label, next.In(tz).Format(time.RFC3339), util.FriendlyDuration(next.Sub(at)))
	return nil
}

func places(w io.Writer, conf *config.Config) error {
	if conf.Earth != (config.PlaceConf{}) {
		place, err := conf.Place("")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, place)
	}
	for _, name := range conf.PlaceNames() {
		place, err := conf.Place(name)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, place)
	}
	return nil
}

func newWatcher(conf *config.Config, args util.Args, w io.Writer) (*earth.Service, error) {
	place, err := resolvePlace(conf, args)
	if err != nil {
		return nil, err
	}
	status := conf.StatusInterval()
	if s, ok := args["status"]; ok {
		status, err = util.ParseDuration(s)
		if err != nil {
			return nil, err
		}
	}
	return &earth.Service{
		Location:  place.Location,
		Offset:    place.Offset,
		Status:    status,
		Publisher: stream.NewPublisher(w),
	}, nil
}

func watch(ctx context.Context, w io.Writer, conf *config.Config, args util.Args) error {
	service, err := newWatcher(conf, args, w)
	if err != nil {
		return err
	}
	if err := services.Register(service); err != nil {
		return err
	}
	ss, err := services.Lookup([]string{service.ID()})
	if err != nil {
		return err
	}
	return services.Launch(ctx, ss)
}
