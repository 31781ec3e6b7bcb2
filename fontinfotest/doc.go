// Package fontinfotest provides test doubles for fontinfo: a virtual-time
// scheduler and synthetic text measurers.
//
//	sched := fontinfotest.NewManualScheduler()
//	m := fontinfotest.NewTableMeasurer(7)
//	r := fontinfo.New(m, fontinfo.WithScheduler(sched))
//	defer r.Dispose()
//
//	r.Read(d)
//	sched.Advance(fontinfo.DefaultRetryDelay)
package fontinfotest
