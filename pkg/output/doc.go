// Package output renders resolution plans for the terminal and for
// machines: styled text, tables, YAML, TOML and a markdown report.
package output
