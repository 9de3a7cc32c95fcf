// Package eventtest provides helpers for asserting on event deliveries in
// tests.
//
// Record attaches a Recorder to a channel and captures every payload in
// delivery order:
//
//	rec := eventtest.Record(selected.Changed())
//	selected.Set("task-1")
//	if rec.Count() != 1 {
//	    t.Errorf("expected 1 change, got %d", rec.Count())
//	}
//
// Recorders work with any channel, including the ones model types expose,
// and detach like any other handler via Dispose.
package eventtest
