// Package project loads project files into an in-memory container and a
// type catalog.
//
// A project file declares parameters, types, services and the extension
// map. YAML, TOML and JSON with comments are read through koanf; XML service
// files use the conventional <container> layout and are read with etree.
package project
