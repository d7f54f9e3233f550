// Package kernel contains shared domain primitives used across all
// aggregates. It currently provides the UUID value object that backs
// entity identity throughout the platform.
package kernel
