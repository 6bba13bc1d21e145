package worker

import (
	"time"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
)

var (
	maxJournalRecords      = uint64(100000)
	restIntervalInPruneJob = 600 * time.Second
	reportInterval         = 120 * time.Second
)

func logWorker(job, subject string, context ...interface{}) {
	log.Info("["+job+"] "+subject, context...)
}

func logWorkerWarn(job, subject string, context ...interface{}) {
	log.Warn("["+job+"] "+subject, context...)
}

func logWorkerError(job, subject string, err error, context ...interface{}) {
	fields := []interface{}{"err", err}
	fields = append(fields, context...)
	log.Error("["+job+"] "+subject, fields...)
}

func logWorkerTrace(job, subject string, context ...interface{}) {
	log.Trace("["+job+"] "+subject, context...)
}
