package worker

import (
	"sync"
	"time"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
)

var reportStatStarter sync.Once

// StartReportStatJob report stat job
func StartReportStatJob() {
	reportStatStarter.Do(func() {
		logWorker("reportstat", "start report stat job", "interval", reportInterval)
		utils.TopWaitGroup.Add(1)
		go reportStat()
	})
}

func reportStat() {
	defer utils.TopWaitGroup.Done()
	for {
		reportEngineStat()
		select {
		case <-utils.CleanupChan:
			return
		case <-time.After(reportInterval):
		}
	}
}

func reportEngineStat() {
	if trustEngine == nil {
		return
	}
	stats, err := trustEngine.Statistics()
	if err != nil {
		logWorkerError("reportstat", "get statistics failed", err)
		return
	}
	ctx := []interface{}{
		"trustlines", stats.TrustLines,
		"creationseq", stats.CreationSeq,
		"eventseq", stats.EventSeq,
	}
	if journalSeqs != nil {
		ctx = append(ctx, "journaled", journalSeqs.MarkedCount(), "journalgap", journalSeqs.FirstGap())
	}
	logWorker("reportstat", "engine statistics", ctx...)
}
