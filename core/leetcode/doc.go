// Package leetcode fetches curated question lists from the LeetCode GraphQL API.
//
// A curated list is addressed by its favorite slug. The client issues a single
// favoriteQuestionList query per call and returns the questions in the order the
// remote service reports them (custom ordering, ascending).
//
// # Authentication
//
// Curated lists are only visible to a logged-in session. The session cookie value
// is read from configuration (LEETCODE_SESSION) and attached to every request as
// the LEETCODE_SESSION cookie.
//
// # Usage
//
//	client := leetcode.NewClient(cfg.LeetCode, logger)
//	questions, err := client.FetchFavoriteQuestions(ctx, leetcode.FacebookThirtyDays)
package leetcode
