package backup

// Config holds configuration for the backup job.
type Config struct {
	// Prefix is prepended to every key in the remote bucket.
	Prefix string `mapstructure:"prefix" default:""`
	// Concurrency is the maximum number of uploads in flight.
	Concurrency int `mapstructure:"concurrency" default:"4"`
	// RatePerSecond caps uploads per second; zero disables the cap.
	RatePerSecond float64 `mapstructure:"rate_per_second" default:"0"`
}
