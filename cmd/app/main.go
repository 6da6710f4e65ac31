package main

import (
	"github.com/ibanezbetes/trinity/core/internal/app"
	"github.com/ibanezbetes/trinity/core/internal/config"
)

func main() {
	app.Go(config.Load())
}
