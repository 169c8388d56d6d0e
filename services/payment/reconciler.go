package payment

import "fixeify/models"

// LocalState tracks a payment attempt from this viewer's perspective, used to
// bridge the gap between "payment just submitted" and the backend recording
// the result. A fresh attempt starts at StateUnknown.
type LocalState string

const (
	// StateUnknown means no local attempt is in flight; the server status is
	// trusted as-is.
	StateUnknown LocalState = "unknown"
	// StateLocalPending means an attempt was initiated and its confirmation is
	// still outstanding.
	StateLocalPending LocalState = "localPending"
	// StateLocalCompleted and StateLocalFailed are terminal for the attempt.
	StateLocalCompleted LocalState = "localCompleted"
	StateLocalFailed    LocalState = "localFailed"
)

// Event drives the attempt state machine.
type Event string

const (
	EventBegin   Event = "begin"
	EventSucceed Event = "succeed"
	EventFail    Event = "fail"
)

// Transition applies an event to the attempt state machine. Completed and
// failed are terminal; a fresh attempt (new attempt ID) is the only way back
// to unknown.
func Transition(current LocalState, ev Event) (LocalState, error) {
	switch {
	case current == StateUnknown && ev == EventBegin:
		return StateLocalPending, nil
	case current == StateLocalPending && ev == EventSucceed:
		return StateLocalCompleted, nil
	case current == StateLocalPending && ev == EventFail:
		return StateLocalFailed, nil
	}
	return current, NewTransitionError(string(ev) + " is not valid from state " + string(current))
}

// Merge combines the last server-read payment status with the local attempt
// state and yields the status to display. A missing server status counts as
// pending. Rules:
//
//   - a server "completed" always wins;
//   - a locally completed attempt shows completed even if a stale server read
//     arrives afterwards;
//   - a locally failed attempt is never masked by a lagging "pending" read.
//
// The last rule is a heuristic carried over from the product's observed
// behavior: if the backend's eventual-consistency window is long, a stale
// "failed" can outlive a payment that later succeeded server-side.
func Merge(server models.PaymentStatus, local LocalState) models.PaymentStatus {
	if server == "" || !server.Valid() {
		server = models.PaymentPending
	}
	switch {
	case server == models.PaymentCompleted:
		return models.PaymentCompleted
	case local == StateLocalCompleted:
		return models.PaymentCompleted
	case local == StateLocalFailed:
		return models.PaymentFailed
	}
	return server
}

// Action is a payment action the UI may offer.
type Action string

const (
	ActionPay   Action = "pay"
	ActionRetry Action = "retry"
)

// Actions returns the payment actions to offer for a displayed status. Nothing
// is offered while the payment window is closed or once payment completed.
func Actions(displayed models.PaymentStatus, windowOpen bool) []Action {
	if !windowOpen {
		return nil
	}
	switch displayed {
	case models.PaymentPending:
		return []Action{ActionPay}
	case models.PaymentFailed:
		return []Action{ActionRetry}
	}
	return nil
}
