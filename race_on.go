//go:build race

package tracing

const raceBuild = true
