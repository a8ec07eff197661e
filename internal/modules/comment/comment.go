// Package comment implements comment create, edit and delete.
//
// Files in this package:
//   - types.go      - DTOs, Store interface, sentinel errors
//   - repository.go - Mongo-backed Store
//   - service.go    - validation and timestamps
//   - handler.go    - route registration and HTTP handlers
package comment
