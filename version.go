package main

// _version is the version reported by -version.
// Release builds override it with -ldflags="-X main._version=...".
var _version = "0.2.0-dev"
