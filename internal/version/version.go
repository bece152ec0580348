package version

// Version is the version of decnum, set at build time with
// -ldflags "-X github.com/hashicorp-forge/decnum/internal/version.Version=...".
var Version = "0.1.0"
