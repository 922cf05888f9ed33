// Package platform contains OS/platform integration glue: filesystem helpers,
// OS open/reveal for exported reports, and local PDF inspection for the
// file-selection preview.
package platform
