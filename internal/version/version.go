package version

// Version is stamped at release time.
var Version = "1.0.0"
