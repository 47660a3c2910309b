// Package testutil provides builders for constructing test fixtures
// with fluent chaining. It is internal and used only from _test.go
// files across the module.
package testutil
