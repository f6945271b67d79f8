package services

import (
	"go-bibsort/config"
	"go-bibsort/services/executor"
	"go-bibsort/services/loader"
)

type Services struct {
	LoaderService   *loader.LoaderServiceT
	ExecutorService *executor.ExecutorService
}

// New loads the index named by configs and builds the services around the
// loaded set.
func New(configs *config.AppConfig) (*Services, error) {
	ls := loader.New(configs.LoaderConfig)
	records, err := ls.Load(configs.LoaderConfig.Path)
	if err != nil {
		return nil, err
	}

	return &Services{
		LoaderService:   ls,
		ExecutorService: executor.New(records, configs.SortConfig),
	}, nil
}
