// Package proto holds the wire and storage schemas. The Go packages
// tradepost/proto/market and tradepost/proto/storage are generated
// from the .proto files and are not committed.
//
//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative market/market.proto
//go:generate protoc --go_out=. --go_opt=paths=source_relative storage/storage.proto
package proto
