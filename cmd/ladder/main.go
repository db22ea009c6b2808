package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/ladder/internal/cli"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	cli.LoadEnv()

	if err := ladder(); err != nil {
		logrus.Fatal(err)
	}
}

func ladder() error {
	root := cli.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
