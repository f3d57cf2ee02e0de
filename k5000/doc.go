// Package k5000 holds the ranged parameter types of the Kawai K5000 patch
// format. The types are generated from the built-in rangedint table.
package k5000

//go:generate go run github.com/redneckbeard/rangedint generate --package k5000 --target zz_rangedint.go
