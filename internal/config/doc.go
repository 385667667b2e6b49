// Package config provides configuration loading, merging, and validation
// facilities for the sandbox-token tool.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables, including defaults such as MONGO_HOST=mongo and
//     MONGO_PORT=27017
//  2. JSON config file
//  3. Command-line flags
//
// The resulting [StructuredConfig] is passed explicitly to the storage layer;
// the process environment is never modified.
//
// The main entry point is [GetStructuredConfig].
package config
