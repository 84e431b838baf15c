// Package enum defines the closed value sets used across folio.
package enum

//go:generate go run github.com/go-pkgz/enum@latest -type theme -lower
type theme int

const (
	themeLight theme = iota
	themeDark
)

//go:generate go run github.com/go-pkgz/enum@latest -type outcome -lower
type outcome int

const (
	outcomeDelivered   outcome = iota
	outcomeRejected            // relay answered with a non-2xx status
	outcomeUnreachable         // transport failed before any response
)

//go:generate go run github.com/go-pkgz/enum@latest -type dbType -lower
type dbType int

const (
	dbTypeSQLite   dbType = iota // enum:alias=sqlite
	dbTypePostgres               // enum:alias=postgres
)
