// Package mangadex provides types, request descriptors, and helpers for working
// with the MangaDex JSON API.
//
// # Overview
//
// Every API call is described by a request type that implements Endpoint: it
// knows its HTTP method, its path, whether it carries a query, a JSON body or
// a multipart form, and whether the call needs a logged-in session. Request
// values are created through fluent builders that hold a Handle, the shared
// client state that owns the transport, the auth tokens and the captcha token.
// A concrete Handle is provided by the mdclient package.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/mangadex-client/pkg/mangadex"
//	  "github.com/fivetwenty-io/mangadex-client/pkg/mdclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := mdclient.NewDefault()
//	  if err != nil { log.Fatal(err) }
//
//	  req, err := cli.Chapter().List().Limit(1).Build()
//	  if err != nil { log.Fatal(err) }
//
//	  chapters, err := req.Send(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = chapters
//	}
//
// # Responses and errors
//
// Responses carry a "result" discriminator. An "ok" envelope is decoded into
// the request's response type. An "error" envelope becomes *ErrorResponse,
// which keeps every APIError in the order the server sent them. Any status of
// 500 or above becomes *ServerError holding the raw body. Bodies that do not
// match the expected shape become *DecodeError, and failures below HTTP become
// *TransportError.
//
//	_, err := req.Send(ctx)
//	var apiErr *mangadex.ErrorResponse
//	if errors.As(err, &apiErr) {
//	  log.Println(apiErr.FirstError().Title)
//	}
//
// Requests that need a session fail with ErrMissingTokens before anything is
// sent when the handle holds no tokens.
//
// # Concurrency
//
// A client is built in one of two modes. ModeExclusive never blocks: a second
// dispatch that overlaps one already in flight fails with ErrBorrowConflict.
// ModeShared serialises dispatches behind a context-aware lock so a client can
// be used from many goroutines.
package mangadex
