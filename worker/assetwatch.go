package worker

import (
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/params"
)

var assetWatchStarter sync.Once

// StartAssetWatchJob watch the assets config directory and reload
// created or changed asset files without restarting the server.
func StartAssetWatchJob() {
	assetsDir := params.GetAssetsDir()
	if assetsDir == "" {
		return
	}
	if trustEngine == nil || trustEngine.AssetRegistry() == nil {
		return
	}
	assetWatchStarter.Do(func() {
		logWorker("assetwatch", "start asset watch job", "dir", assetsDir)
		utils.TopWaitGroup.Add(1)
		go watchAssetDir(assetsDir)
	})
}

func watchAssetDir(dir string) {
	defer utils.TopWaitGroup.Done()
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logWorkerError("assetwatch", "create watcher failed", err)
		return
	}
	defer func() { _ = watcher.Close() }()
	if err := watcher.Add(dir); err != nil {
		logWorkerError("assetwatch", "watch dir failed", err, "dir", dir)
		return
	}
	reg := trustEngine.AssetRegistry()
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !strings.HasSuffix(event.Name, ".toml") {
				continue
			}
			logWorker("assetwatch", "reload asset file", "file", event.Name, "op", event.Op.String())
			if err := reg.LoadAssetFile(event.Name); err != nil {
				logWorkerError("assetwatch", "reload asset file failed", err, "file", event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logWorkerError("assetwatch", "watcher error", err)
		case <-utils.CleanupChan:
			return
		}
	}
}
