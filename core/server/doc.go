// Package server holds the HTTP server configuration.
//
// The start command owns the fiber app itself; this package only defines the
// listen address, the dashboard directory and the request body cap derived from
// the storage file size limit.
package server
