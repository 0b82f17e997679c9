// Package bridge turns a callback-based asynchronous operation into a
// blocking call.
package bridge

// Await calls submit with a one-shot callback and blocks until that callback
// has been invoked, then returns the value it was invoked with.
//
// submit is expected to hand the callback to an asynchronous operation and
// return; the callback may run on any goroutine, before or after submit
// returns. The callback never blocks. Only the first invocation is observed;
// invoking it more than once violates the contract of the operation.
//
// There is no timeout: if the callback is never invoked, Await never returns.
func Await[T any](submit func(callback func(T))) T {
	slot := make(chan T, 1)

	submit(func(value T) {
		select {
		case slot <- value:
		default:
		}
	})

	return <-slot
}
