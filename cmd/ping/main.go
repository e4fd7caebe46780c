// cmd/ping/main.go
//
// Connectivity probe for the MongoDB backing store.
// Intended for Docker HEALTHCHECK:
//   HEALTHCHECK CMD ["/ping"]

package main

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// -----------------------------------------------------------------------------
// Constants
// -----------------------------------------------------------------------------
const (
	defaultURI     = "mongodb://mongo:27017"
	requestTimeout = 2 * time.Second

	// exit codes
	codeConnectFailed = 2
	codePingFailed    = 3

	// log / error templates
	msgConnectFailed = "connect failed: %v"
	msgPingFailed    = "ping failed: %v"
	msgHealthy       = "mongo healthy at %s"
)

func main() {
	uri := detectURI()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	cli, err := mongo.Connect(options.Client().
		ApplyURI(uri).
		SetConnectTimeout(requestTimeout))
	if err != nil {
		fail(codeConnectFailed, msgConnectFailed, err)
	}
	defer func() {
		if err := cli.Disconnect(context.Background()); err != nil {
			log.Printf("failed to disconnect: %v", err)
		}
	}()

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		fail(codePingFailed, msgPingFailed, err)
	}

	log.Printf(msgHealthy, uri)
}

// detectURI parses MONGO_URI and falls back to defaultURI.
func detectURI() string {
	if v := os.Getenv("MONGO_URI"); v != "" {
		return v
	}
	return defaultURI
}

// fail logs a message and exits with the given code.
func fail(code int, format string, args ...any) {
	log.Printf(format, args...)
	os.Exit(code)
}
