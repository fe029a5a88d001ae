package main

import (
	"os"

	"github.com/fourcreative/studiodesk/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
