package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/roundrobin/internal/roundrobin/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := roundrobin(); err != nil {
		logrus.Fatal(err)
	}
}

func roundrobin() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
