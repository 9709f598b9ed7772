// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config.yaml file, and ANKIGEN_ environment
// variables. It produces one explicit Config value that is handed to the
// pipeline at construction; nothing is reloaded mid-run.
package config
