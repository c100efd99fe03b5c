package container

// HazardNotifier is the side channel invoked when a hazardous overload is
// attempted on a hazard-capable container. The notification is advisory: it
// never alters control flow, and the overload error is raised to the caller
// regardless of what the notifier does.
//
// A container either carries a notifier or it does not; the domain invokes
// it only when present.
type HazardNotifier interface {
	// NotifyHazard receives a human-readable description of the attempt:
	// the container kind, its serial number, the attempted cargo mass, the
	// effective limit, and the danger flag.
	NotifyHazard(message string)
}

// HazardNotifierFunc adapts a plain function to the HazardNotifier interface.
type HazardNotifierFunc func(message string)

// NotifyHazard calls the wrapped function.
func (f HazardNotifierFunc) NotifyHazard(message string) {
	f(message)
}
