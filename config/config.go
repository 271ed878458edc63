package config

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/barnybug/daylight/sun"
	"github.com/barnybug/daylight/util"
	"github.com/pkg/errors"

	"gopkg.in/yaml.v2"
)

// PlaceConf is a place as written in the configuration file. Offset is a
// UTC offset in any form util.ParseOffset accepts; when empty the solar
// offset of the longitude is used.
type PlaceConf struct {
	Latitude  float64
	Longitude float64
	Offset    string
}

type Duration struct {
	Duration time.Duration
}

func (self *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	d, err := util.ParseDuration(s)
	if err != nil {
		return err
	}
	self.Duration = d
	return nil
}

type WatchConf struct {
	Status *Duration
}

type Config struct {
	Earth  PlaceConf
	Places map[string]PlaceConf
	Watch  WatchConf
}

// Place is a resolved, validated place.
type Place struct {
	Name     string
	Location sun.Location
	Offset   int
}

func (self Place) String() string {
	return self.Name + " (" + self.Location.String() + " " + util.FormatOffset(self.Offset) + ")"
}

// Open configuration from disk.
func Open() (*Config, error) {
	return OpenFile(ConfigPath("daylight.yml"))
}

// Open configuration from a named file.
func OpenFile(name string) (*Config, error) {
	file, err := os.Open(util.ExpandUser(name))
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return OpenReader(file)
}

// Open configuration from a reader.
func OpenReader(r io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return OpenRaw(data)
}

// Open configuration from []byte.
func OpenRaw(data []byte) (*Config, error) {
	self := &Config{}
	err := yaml.Unmarshal(data, self)
	if err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}

	if _, err := self.Earth.resolve("earth"); err != nil {
		return nil, err
	}
	for name, conf := range self.Places {
		if name == "earth" || name == "home" {
			return nil, errors.Errorf("place %q: name is reserved", name)
		}
		if _, err := conf.resolve(name); err != nil {
			return nil, err
		}
	}
	return self, nil
}

func (self PlaceConf) resolve(name string) (Place, error) {
	loc := sun.Location{Latitude: self.Latitude, Longitude: self.Longitude}
	if !loc.Valid() {
		return Place{}, errors.Errorf("place %q: coordinates %s out of range", name, loc)
	}
	offset := util.SolarOffset(self.Longitude)
	if self.Offset != "" {
		var err error
		offset, err = util.ParseOffset(self.Offset)
		if err != nil {
			return Place{}, errors.Wrapf(err, "place %q", name)
		}
	}
	return Place{Name: name, Location: loc, Offset: offset}, nil
}

// Place looks up a configured place. The empty name and "home" both refer
// to the earth section.
func (self *Config) Place(name string) (Place, error) {
	if name == "" || name == "home" || name == "earth" {
		return self.Earth.resolve("earth")
	}
	conf, ok := self.Places[name]
	if !ok {
		return Place{}, errors.Errorf("unknown place %q", name)
	}
	return conf.resolve(name)
}

// PlaceNames lists the named places, sorted.
func (self *Config) PlaceNames() []string {
	var names []string
	for name := range self.Places {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StatusInterval is the period between watcher status events, zero if
// disabled.
func (self *Config) StatusInterval() time.Duration {
	if self.Watch.Status == nil {
		return 0
	}
	return self.Watch.Status.Duration
}

// helpers

// Resolve a configuration file under .config/daylight
func ConfigPath(p string) string {
	return filepath.Join(util.ConfigDir("daylight"), p)
}
