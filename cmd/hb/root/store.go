package root

import (
	"habitbuilder/internal/engine"
	"habitbuilder/internal/store"
)

// dataPath is the --data persistent flag; empty means the platform
// default under the user config directory.
var dataPath string

func openStore() (*store.Store, error) {
	path := dataPath
	if path == "" {
		var err error
		path, err = store.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return store.New(path), nil
}

func openService() (*engine.Service, error) {
	s, err := openStore()
	if err != nil {
		return nil, err
	}
	return engine.NewService(s), nil
}
