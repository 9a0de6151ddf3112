package main

import (
	"roomboard/core/logger"
	"roomboard/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
