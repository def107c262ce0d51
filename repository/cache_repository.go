package repository

import "time"

// CacheRepository stores short-lived strings, used by the advisor to avoid
// re-requesting explanations for identical inputs. A zero TTL means no
// expiry.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
}
