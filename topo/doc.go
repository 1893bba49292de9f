// Package topo handles the file formats surrounding a distribution run:
// loading model topographies (the per-gridpoint depth-level field that
// determines which gridpoints are ocean) and persisting computed
// distributions for inspection and the interactive viewer.
//
// Two topography encodings are supported: the model's native raw dump
// (big-endian int32, row-major, southernmost row first) and a whitespace
// separated ASCII grid, convenient for tests and hand-written cases.
// Distributions are stored as YAML.
package topo
