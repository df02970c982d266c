package main

import (
	"hashly/cmd/handlers"
	"hashly/internal/logger"
)

func main() {
	logger.Init()
	handlers.Execute()
}
