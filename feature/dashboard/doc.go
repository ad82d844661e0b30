// Package dashboard serves the browser front end.
//
// GET / returns index.html from the configured static directory, or a built-in
// page pointing at the API documentation when the directory has none. Every other
// asset in the directory is served under /static.
package dashboard
