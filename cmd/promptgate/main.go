package main

import (
	"github.com/promptgate/promptgate/pkg/app"
)

const appName = "promptgate"

var (
	GitSha = "unknown"
	GitRef = "unknown"
)

func main() {
	app.Run(GitRef, GitSha, appName)
}
