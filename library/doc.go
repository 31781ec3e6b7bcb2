// Package library keeps the font binaries available to the measurement
// backends, indexed by family name and variant.
//
// A family that has not been registered yet behaves like a web font that
// is still loading: backends measure it as zero width, fontinfo treats the
// result as degenerate, and the monitor picks the real widths up once the
// family is registered.
//
//	lib := library.New()
//	if err := lib.RegisterGoFonts(); err != nil {
//	    log.Fatal(err)
//	}
//	face, ok := lib.Resolve(`"Go Mono", monospace`, library.Regular)
package library
