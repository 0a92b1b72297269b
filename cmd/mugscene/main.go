package main

import (
	"github.com/mbly-snhu-portfolio/CS-330/internal/engine"
	"github.com/mbly-snhu-portfolio/CS-330/internal/logger"

	"go.uber.org/zap"
)

func main() {
	logger.Init()

	viewer := engine.NewViewer()
	if err := viewer.Run(); err != nil {
		logger.Log.Fatal("Viewer exited with error", zap.Error(err))
	}
}
