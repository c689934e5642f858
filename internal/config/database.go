package config

import (
	"fmt"
	"time"

	"ridepool/internal/utils"
)

type DatabaseConfig struct {
	URI            string        `yaml:"uri"`
	Database       string        `yaml:"database"`
	MaxPoolSize    int           `yaml:"max_pool_size"`
	MinPoolSize    int           `yaml:"min_pool_size"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	SocketTimeout  time.Duration `yaml:"socket_timeout"`

	RidesCollection         string `yaml:"rides_collection"`
	RideRequestsCollection  string `yaml:"ride_requests_collection"`
	NotificationsCollection string `yaml:"notifications_collection"`
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017/ridepool"),
		Database:       getEnv("MONGODB_DATABASE", "ridepool"),
		MaxPoolSize:    getEnvAsInt("MONGODB_MAX_POOL_SIZE", 100),
		MinPoolSize:    getEnvAsInt("MONGODB_MIN_POOL_SIZE", 5),
		ConnectTimeout: getEnvAsDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		SocketTimeout:  getEnvAsDuration("MONGODB_SOCKET_TIMEOUT", 30*time.Second),

		RidesCollection:         getEnv("MONGODB_RIDES_COLLECTION", "rides"),
		RideRequestsCollection:  getEnv("MONGODB_RIDE_REQUESTS_COLLECTION", "ride_requests"),
		NotificationsCollection: getEnv("MONGODB_NOTIFICATIONS_COLLECTION", "notifications"),
	}
}

// Validate guards the identifiers every store operation depends on. A blank
// database or collection name is fatal before any store call is issued.
func (c *DatabaseConfig) Validate() error {
	if c.URI == "" {
		return fmt.Errorf("%w: MONGODB_URI is required", utils.ErrConfiguration)
	}
	if c.Database == "" {
		return fmt.Errorf("%w: MONGODB_DATABASE is required", utils.ErrConfiguration)
	}
	if c.RidesCollection == "" {
		return fmt.Errorf("%w: rides collection identifier is required", utils.ErrConfiguration)
	}
	if c.RideRequestsCollection == "" {
		return fmt.Errorf("%w: ride requests collection identifier is required", utils.ErrConfiguration)
	}
	if c.NotificationsCollection == "" {
		return fmt.Errorf("%w: notifications collection identifier is required", utils.ErrConfiguration)
	}
	return nil
}
