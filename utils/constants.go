// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// AuthTokenTTL is the lifetime of issued session tokens.
const AuthTokenTTL = 72 * time.Hour

// ChatChannelPrefix is the prefix for Redis pub/sub chat channels, keyed by booking ID.
const ChatChannelPrefix = "chat:"
