// Package config provides configuration management for the question tracker.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file in the working directory. The .env file is the usual home of
// LEETCODE_SESSION, the session cookie copied from a logged-in browser.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - LeetCode: GraphQL endpoint, site root, session cookie, default list, timeout
//   - Report: output directory, file prefix and date layout of the CSV reports
//   - Log: logging level and format
//   - Server: HTTP port and API key for the serve command
//
// Every key maps to an upper-case environment variable with dots replaced by
// underscores, e.g. report.output_dir -> REPORT_OUTPUT_DIR.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.LeetCode.Endpoint)
package config
