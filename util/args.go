package util

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Args holds command line arguments of the form key=value. A bare argument
// is stored under the empty key.
type Args map[string]string

func KeywordArgs(args []string) Args {
	ret := Args{}
	for _, arg := range args {
		p := strings.SplitN(arg, "=", 2)
		if len(p) == 2 {
			ret[p[0]] = p[1]
		} else {
			ret[""] = p[0]
		}
	}
	return ret
}

func (a Args) String(key, def string) string {
	if value, ok := a[key]; ok {
		return value
	}
	return def
}

// Float parses key as a float. ok is false when the key is absent.
func (a Args) Float(key string) (value float64, ok bool, err error) {
	s, ok := a[key]
	if !ok {
		return 0, false, nil
	}
	value, err = strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, true, errors.Errorf("invalid %s: %q", key, s)
	}
	return value, true, nil
}
