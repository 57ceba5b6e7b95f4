// Package utils holds small helpers shared by hop commands that do not
// warrant a package of their own.
package utils

// Set at build time through -ldflags "-X".
var (
	Version   = "dev"
	Sha       = "HEAD"
	Buildtime = "dev"
)
