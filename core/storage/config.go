package storage

// Config holds configuration for the local object store.
type Config struct {
	// Root is the directory under which every object is stored.
	Root string `mapstructure:"root" default:"data"`
}
