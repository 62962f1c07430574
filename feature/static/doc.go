// Package static serves files from a single root directory.
//
// GET and HEAD requests are answered by fiber's static handler, which provides
// byte ranges, Last-Modified, Content-Length, index.html lookup and directory
// browsing. Missing or unreadable paths produce the framework's 404.
//
// # Content types
//
// The handler's guess, based on the extension table with content sniffing as
// fallback, is replaced for three suffixes, checked in order:
//
//   - .geojson: application/geo+json
//   - .js: application/javascript
//   - .css: text/css
package static
