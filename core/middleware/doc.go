// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - secure: sets X-Content-Type-Options, X-Frame-Options and X-XSS-Protection
//     on every response, including error responses.
//   - serial: serializes request handling so one request runs at a time.
//
// Both are registered globally by the server package.
package middleware
