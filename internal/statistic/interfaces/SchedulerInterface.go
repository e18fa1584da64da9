package interfaces

// SchedulerInterface drives the store lifecycle around the HTTP server.
type SchedulerInterface interface {
	// Init starts the periodic flush job. A non-positive store.saveInterval
	// leaves it disabled.
	Init()
	Stop()
	// Restore loads persisted state before the first request is served.
	Restore() error
	// Persist performs the final flush on shutdown.
	Persist() error
}
