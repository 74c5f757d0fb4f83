// Package stencil holds project-wide metadata.
package stencil

// Version is the stencil release version.
const Version = "0.1.0"
