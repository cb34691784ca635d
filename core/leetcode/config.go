package leetcode

// Config holds configuration for the LeetCode API client.
type Config struct {
	// Endpoint is the GraphQL endpoint queried for question lists.
	Endpoint string `mapstructure:"endpoint" default:"https://leetcode.com/graphql"`
	// BaseURL is the site root used for problem links and the Referer header.
	BaseURL string `mapstructure:"base_url" default:"https://leetcode.com"`
	// Session is the LEETCODE_SESSION cookie of a logged-in browser session.
	Session string `mapstructure:"session" default:""`
	// FavoriteSlug is the list fetched when none is given on the command line.
	FavoriteSlug string `mapstructure:"favorite_slug" default:"facebook-thirty-days"`
	// TimeoutSeconds is the request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
