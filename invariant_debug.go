//go:build debug

package tracing

const debugBuild = true
