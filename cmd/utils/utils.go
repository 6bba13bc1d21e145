package utils

import (
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/params"
	"github.com/urfave/cli/v2"
)

var (
	clientIdentifier string
	gitCommit        string
	gitDate          string

	// TopWaitGroup is the wait group of the top level long run jobs
	TopWaitGroup = new(sync.WaitGroup)
	// CleanupChan is closed when the process catches a stop signal
	CleanupChan = make(chan struct{})
)

// NewApp creates an app with sane defaults.
func NewApp(identifier, gitcommit, gitdate, usage string) *cli.App {
	clientIdentifier = identifier
	gitCommit = gitcommit
	gitDate = gitdate
	app := cli.NewApp()
	app.Name = filepath.Base(os.Args[0])
	app.Version = params.VersionWithCommit(gitCommit, gitDate)
	app.Usage = usage
	return app
}

// WaitAndCleanup wait the stop signal, close CleanupChan so the long
// run jobs exit, then run the destroy function.
func WaitAndCleanup(destroy func()) {
	waitInterrupt()
	close(CleanupChan)
	TopWaitGroup.Wait()
	destroy()
}

func waitInterrupt() {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	sig := <-signalChan
	log.Info("receive stop signal", "signal", sig.String())
}
