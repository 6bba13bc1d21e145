package worker

import (
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/mongodb"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
)

// writeHistoryRecord history listener. Records are keyed by the event
// content digest so retried writes stay idempotent.
func writeHistoryRecord(ev *trustlines.Event) {
	mo := mongodb.ConvertEventToLineOp(ev)
	err := mongodb.AddLineOp(mo)
	if err != nil {
		logWorkerError("history", "add line op failed", err, "seq", ev.Seq, "op", ev.Op)
	} else {
		logWorkerTrace("history", "add line op success", "seq", ev.Seq, "op", ev.Op)
	}
}
