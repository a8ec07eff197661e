// Package movie implements the catalog read endpoints.
//
// Files in this package:
//   - types.go      - Store interface, response structs, sentinel errors
//   - repository.go - Mongo-backed Store
//   - service.go    - pagination and detail assembly
//   - handler.go    - route registration and HTTP handlers
package movie
