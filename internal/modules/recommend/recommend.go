// Package recommend turns a free-text prompt and a persona into movie
// recommendations produced by an LLM over a digest of the catalog.
//
// Files in this package:
//   - types.go   - request/result types and the error taxonomy
//   - persona.go - persona table and resolver
//   - digest.go  - catalog digest builder
//   - prompt.go  - chat message construction
//   - provider.go, chat.go, sdk.go - Completer implementations
//   - parser.go  - model output parsing and shape validation
//   - service.go - pipeline orchestration
//   - handler.go - HTTP binding
package recommend
