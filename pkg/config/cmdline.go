package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

func ParseCmdLine(f *pflag.FlagSet, args []string) (*pflag.FlagSet, bool, error) {
	help := f.BoolP("help", "h", false, "Show usage help")
	f.String(listen, listenDefault(), "Listening address and/or port")
	f.Duration(shutdownTimeout, 30*time.Second, "Timeout for draining in-flight requests on shutdown")

	f.String(store, string(StoreMemory), "Quota store to use, valid options are: "+validStoresHelp)
	f.String(databasePath, "", "Path to the SQLite database file (sqlite store only)")
	f.Int64(defaultRequestLimit, 15000, "Request limit applied to users registered without an explicit limit")
	f.Int64(defaultConcurrencyCap, 1, "Concurrency cap applied to users registered without an explicit cap")

	f.String(tokenSecret, "", "Secret used to sign and verify access tokens")
	f.Duration(tokenTTL, time.Hour, "Access token lifetime")

	f.StringSlice(adminEmails, nil, "Emails allowed to call administrative endpoints")
	f.Bool(adminEndpoints, true, "Enable administrative endpoints")
	f.Bool(allowIdentityFallback, false, "Accept the identity from the request body when no token is presented"+
		" (trusted environments only)")

	f.String(modelsURI, defaultModelsURI, "Path or URL to models YAML config file")
	f.String(upstreamURL, DefaultUpstreamURL, "Base URL of the upstream generation API")
	f.String(upstreamAPIKey, "", "API key for the upstream generation API")
	f.Duration(connectTimeout, 10*time.Second, "Upstream connection timeout")
	f.Duration(generateTimeout, 5*time.Minute, "Overall timeout for a single generation request")

	if err := f.Parse(args); err != nil {
		return nil, true, err
	}
	if *help {
		_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		f.PrintDefaults()
		return nil, true, nil
	}

	return f, false, nil
}

func listenDefault() string {
	// containers need to listen on all interfaces, local runs should not
	if inContainer() {
		return DefaultListen
	}
	return DefaultLocalListen
}

func inContainer() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}
	_, ok := os.LookupEnv("KUBERNETES_SERVICE_HOST")
	return ok
}
