/*
Package client multiplexes concurrent request/response exchanges over a
synchronous poll-based engine boundary.

A Router owns one engine handle, one correlation id counter, and one
table of pending waiters. Any number of goroutines call Dispatch
concurrently; exactly one driver goroutine polls the engine through Run
(or repeated Pump calls) and routes each arriving payload:

  - payloads carrying "@extra" complete the matching pending dispatch;
  - payloads carrying "@client_id" decode through the event registry and
    surface as Events;
  - responses nobody is waiting for are dropped silently.

# Dispatching

	r := client.NewRouter(engine, client.Options{Logger: logger})
	id := r.CreateClient()

	go r.Run(ctx, 2*time.Second, func(ev *client.Event) { ... })

	raw, err := r.Dispatch(ctx, id, map[string]any{"@type": "getMe"})

Dispatch blocks until the response arrives or ctx is done. The router
itself never times a request out: an unanswered request stays pending
until its caller gives up. On cancellation the waiter is deregistered;
if the response was already claimed for delivery it wins and is
returned.

# Errors

Operations fail with exactly two error kinds: APIError, reported by the
engine, and DecodeError, a local decoding failure. Code extracts the
engine code from either kind of error chain, returning CodeUnknown for
anything that is not an engine error.
*/
package client
