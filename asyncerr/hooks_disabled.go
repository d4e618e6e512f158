//go:build scg_noerrhooks

package asyncerr

// The hook subsystem is compiled out: context attachment skips
// notification entirely and no registry exists to look up.
func notify[E error](*Error[E]) {}
