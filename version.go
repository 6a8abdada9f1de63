package urlcore

// Version is the module's release identifier, reported by consumers
// like cmd/urlcanon in place of a build-time ldflags injection.
const Version = "0.1.0"
