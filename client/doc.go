// Package client provides a Go client for the pastery.net paste API.
//
// # Quick Start
//
//	package main
//
//	import (
//		"context"
//		"fmt"
//		"log"
//		"os"
//
//		"github.com/tombowditch/patisserie/client"
//	)
//
//	func main() {
//		c := client.New()
//
//		url, err := c.Paste(context.Background(), client.Paste{
//			APIKey:   os.Getenv("PASTERY_API_KEY"),
//			Duration: 60,
//			Language: "go",
//			Content:  []byte("package main\n"),
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println("Paste URL:", url)
//	}
//
// # Building Requests
//
// NewRequest turns a Paste into a Request without touching the network, so
// the query string can be inspected or logged (see Request.Redacted) before
// Client.Create sends it.
//
// # Error Handling
//
// pastery answers with 200 OK even when it rejects a paste, so the outcome is
// decided by the shape of the JSON body alone:
//
//	url, err := c.Paste(ctx, p)
//	if client.IsRemote(err) {
//		// pastery's own message, e.g. an invalid API key
//	}
//	if client.IsMalformedResponse(err) {
//		// neither {"url": ...} nor {"error_msg": ...}
//	}
package client
