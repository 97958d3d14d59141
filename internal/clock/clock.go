package clock

import "time"

// Clock is the time source injected into components whose behavior depends
// on "now" in the configured timezone.
type Clock interface {
	Now() time.Time
}

type localClock struct {
	loc *time.Location
}

// NewLocal returns a clock pinned to the named IANA timezone.
func NewLocal(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &localClock{loc: loc}, nil
}

func (c *localClock) Now() time.Time {
	return time.Now().In(c.loc)
}
