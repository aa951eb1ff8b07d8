// Package mdclient provides the primary entry point for constructing a
// MangaDex API client that implements the mangadex.Client interface.
//
// It layers configuration and the HTTP transport on top of the request types
// defined in the mangadex package. Most applications should import mdclient
// to build a client, then use the returned mangadex.Client to reach the
// resource builders, for example Chapter(), User(), Auth().
//
// Quick start
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
//
//	  // Production API, exclusive mode.
//	  cli, err := mdclient.NewDefault()
//	  if err != nil { log.Fatal(err) }
//
//	  // Or a shared client for use from several goroutines:
//	  cli, err = mdclient.New(&mangadex.Config{Mode: mangadex.ModeShared})
//	  if err != nil { log.Fatal(err) }
//
//	  login, err := cli.Auth().Login().Username("reader").Password("secret").Build()
//	  if err != nil { log.Fatal(err) }
//	  if _, err := login.Send(ctx); err != nil { log.Fatal(err) }
//	}
package mdclient
