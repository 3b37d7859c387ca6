// cmd/bfield/main.go
package main

import (
	"bfield/internal/app"
	"bfield/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
