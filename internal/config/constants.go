package config

const (
	// Leaderboard cache defaults
	DefaultLeaderboardCacheSize       = 64
	DefaultLeaderboardCacheTTLSeconds = 60
	DefaultLeaderboardLimit           = 50
)
