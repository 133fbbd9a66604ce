// Package env reads raw environment variables for the few knobs that
// must resolve before config.Load runs, such as the log output format.
package env

import "os"

// Get returns the variable's value, or the fallback when it is unset
// or empty. Empty is treated as unset so `CURVECRAFT_X=` in an .env
// file does not silently blank a default.
func Get(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
