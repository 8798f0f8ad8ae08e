// Package ws provides the live stream used by the editor to run code as
// the learner types.
//
// Every run request supersedes the previous one on the same connection: a
// request still waiting out the debounce delay is dropped and a run in
// flight is cancelled. Results of superseded runs are never sent.
//
// Message Types (Client → Server):
//   - run: {type, id, source, kind}
//   - ping: Keep-alive ping
//
// Message Types (Server → Client):
//   - result: {type, id, result} with the ExecutionResult
//   - pong: Reply to ping
//   - error: Invalid request or unknown message type
//
// Example Usage:
//
//	handler := ws.NewHandler(ev, logger, metrics, ws.Config{Debounce: 300 * time.Millisecond})
//	router.GET("/stream", handler.HandleConnection)
package ws
