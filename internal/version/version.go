package version

// AppVersion is the devscope release version. Overridden at build time via
// -ldflags "-X github.com/justelson/devscope/internal/version.AppVersion=...".
var AppVersion = "0.3.0"
