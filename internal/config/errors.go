package config

import "errors"

// Sentinel errors for configuration loading. Callers match them with
// errors.Is, so load functions wrap rather than replace them.
var (
	ErrRedisAddrMissing = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB   = errors.New("REDIS_DB must be an integer")
)
