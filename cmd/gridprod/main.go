// cmd/gridprod/main.go
package main

import (
	"gridprod/internal/app"
	"gridprod/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
