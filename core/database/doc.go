// Package database opens the optional SQL database used for the tool activity log.
//
// Connect supports sqlite (default, a local file) and mysql through GORM and
// verifies the connection with a bounded ping. The application runs without a
// database; callers log a warning and disable the features that need one.
package database
