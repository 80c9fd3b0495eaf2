// Package version reports build metadata for batchpipe binaries.
//
// Version, commit and build time are set at link time:
//
//	go build -ldflags "-X github.com/kbukum/batchpipe/version.Version=1.0.0 \
//	    -X github.com/kbukum/batchpipe/version.GitCommit=$(git rev-parse --short HEAD)"
//
// Values left empty fall back to the VCS stamp embedded by the Go toolchain.
package version
