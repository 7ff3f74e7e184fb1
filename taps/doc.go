// Package taps provides the sources which feed obfuscation requests into an engine.
//
// A tap watches the local filesystem and turns every stable file it discovers
// into a work unit. Plain files get encoded into the target directory with the
// encoded extension attached, and encoded files get decoded with the extension
// stripped off.
package taps
