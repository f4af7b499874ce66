// Package cli parses the resolver's command-line surface into an app.Config.
// It owns the usage text and the mapping from bad input to exit code 2;
// everything past argument validation belongs to the app package.
package cli
