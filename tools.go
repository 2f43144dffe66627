//go:build tools

package tools

// CLI tools used during development; not compiled into the binaries.
//
// - github.com/matryer/moq: service and handler mocks (*_mock_test.go)
// - github.com/pressly/goose/v3/cmd/goose: ad-hoc migrations (cmd/migrate covers CI)
