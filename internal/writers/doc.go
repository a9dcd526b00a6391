// Package writers turns a scan report into serialized output.
//
// Design:
//   - Writers own all presentation knowledge (pretty grid, JSON, YAML).
//   - Engine stays domain-only; app stays orchestration-only.
//   - JSON/YAML go through pkg/api (v1) for a stable wire format.
package writers
