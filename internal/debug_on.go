//go:build parvecdebug
// +build parvecdebug

package internal

const debugChecks = true
