// Package gotext measures text by shaping it with go-text/typesetting.
//
// Unlike the ximage backend, the probe string runs through HarfBuzz, so
// kerning and ligatures show up in the measured width. Probes are single
// characters, so for most fonts both backends agree.
package gotext
