// cmd/bfield-map/main.go
package main

import (
	"bfield/internal/appshell"
	"bfield/internal/mapapp"
)

func main() { appshell.Main(mapapp.RunContext) }
