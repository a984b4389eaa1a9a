// Package api defines the binary boundary contract between a media-center
// host and a loaded addon module: status codes, instance-type tags, log
// levels, the two function tables, and the raw setting-value view.
//
// The shapes in this package are fixed by the host. They are reproduced here
// for compatibility and must not be changed independently of the host.
package api
