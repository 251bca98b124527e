package main

import (
	"log"
	"os"

	"github.com/luscis/swengine/cmd/api"
	"github.com/luscis/swengine/cmd/api/v1"
)

func main() {
	api.Url = api.GetEnv("URL", api.Url)
	app := &api.App{}
	app.New()
	v1.Commands(app)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
