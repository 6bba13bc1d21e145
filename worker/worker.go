package worker

import (
	"time"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/params"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/rpc/client"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
)

const interval = 10 * time.Millisecond

var trustEngine *trustlines.Engine

// StartWork start trust server work. The engine's event sink is wired
// to the fanout queue, call AddEventListener before the first
// operation to not miss events.
func StartWork(engine *trustlines.Engine) {
	logWorker("worker", "start server worker")

	client.InitHTTPClient()
	trustEngine = engine

	openJournal()
	journalSeqs = newSequenceTracker(lastJournaledSeq())
	engine.SetEventSeqStart(journalSeqs.MaxSeq())

	AddEventListener(writeJournalRecord)
	if !params.IsTestMode() {
		AddEventListener(writeHistoryRecord)
	}
	startEventFanout()
	engine.SetEventSink(QueueEvent)

	go StartAssetWatchJob()
	time.Sleep(interval)

	go StartJournalPruneJob()
	time.Sleep(interval)

	go StartReportStatJob()
}

// Stop close the journal after the jobs finished
func Stop() {
	closeJournal()
	logWorker("worker", "server worker stopped")
}
