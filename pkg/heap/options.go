package heap

import "math"

// Options tune a heap's growth policy.
type Options struct {
	// MaxCapacity bounds capacity growth. An insert into a full heap that is
	// already at MaxCapacity fails with customerrors.ErrCapacityExhausted.
	// Zero means no bound other than the platform's max int.
	MaxCapacity int `json:"max_capacity"`
}

var DefaultOptions = Options{
	MaxCapacity: math.MaxInt,
}

func (o *Options) maxCapacity() int {
	if o == nil || o.MaxCapacity <= 0 {
		return DefaultOptions.MaxCapacity
	}
	return o.MaxCapacity
}
