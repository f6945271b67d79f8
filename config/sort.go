package config

type SortConfig struct {
	// break key ties by load order
	Stable bool `mapstructure:"stable"`

	// check every result is ordered before handing it out
	Verify bool `mapstructure:"verify"`

	// upper bound on heap growth; 0 means unbounded. Never below the
	// number of loaded articles, a smaller value is raised to it.
	MaxHeapCapacity int `mapstructure:"max_heap_capacity"`
}

func NewSortConfig() *SortConfig {
	return &SortConfig{}
}
