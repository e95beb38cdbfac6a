package version

// Name identifies the service in logs, traces, and event connections.
const Name = "authd"

// Version is overridden at build time via -ldflags.
var Version = "dev"
