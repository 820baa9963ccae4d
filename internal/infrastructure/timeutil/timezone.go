package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locations caches loaded zones by name.
var locations sync.Map

// GetLocation loads the named zone once and serves later calls from the cache.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locations.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	locations.Store(name, loc)
	return loc, nil
}

// ParseFirst tries each layout in order and returns the first successful parse.
// Layouts without zone information are read in loc; nil loc means time.Local.
func ParseFirst(value string, loc *time.Location, layouts ...string) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	var lastErr error
	for _, layout := range layouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no layouts to parse %q", value)
	}
	return time.Time{}, lastErr
}
