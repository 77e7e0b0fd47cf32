package version

// Version of the application, set via ldflags at build time.
var Version = "dev"
