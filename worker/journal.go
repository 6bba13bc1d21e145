package worker

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/leveldb"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/log"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/params"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
)

const (
	identifierKey  = "trust-identifier"
	eventKeyPrefix = "event:"
)

var (
	lvldbHandle *leveldb.Database
	journalSeqs *sequenceTracker

	journalPruneStarter sync.Once
)

func eventRecordKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", eventKeyPrefix, seq))
}

func parseEventRecordKey(key []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(key), eventKeyPrefix+"%d", &seq)
	return seq, err
}

func getLeveldbPath() string {
	dataDir := params.GetDataDir()
	identifier := params.GetIdentifier()
	path := strings.ToLower(fmt.Sprintf("%s/%s", dataDir, identifier))
	return path
}

func closeJournal() {
	if lvldbHandle == nil {
		return
	}
	err := lvldbHandle.Close()
	if err != nil {
		log.Error("close journal database failed", "err", err)
	} else {
		log.Info("close journal database success")
	}
}

func openJournal() {
	if lvldbHandle != nil {
		log.Crit("forbid to reopen journal database")
	}

	if params.GetDataDir() == "" || params.GetIdentifier() == "" {
		log.Info("ignore open journal database", "datadir", params.GetDataDir(), "identifier", params.GetIdentifier())
		return
	}

	path := getLeveldbPath()
	db, err := leveldb.New(path, 16, 16, false)
	if err != nil {
		log.Crit("open journal database failed", "path", path, "err", err)
	}
	log.Info("open journal database success", "path", path)

	configIdentifier := params.GetIdentifier()

	identifierVal, err := db.Get([]byte(identifierKey))
	identifierInDB := string(identifierVal)
	if err != nil {
		if !leveldb.IsNotFoundErr(err) {
			log.Fatal("get identifier from journal database failed", "err", err)
		}
		err = db.Put([]byte(identifierKey), []byte(configIdentifier)) // init identifier
		if err != nil {
			log.Fatal("write identifier to journal database failed", "identifier", configIdentifier, "err", err)
		} else {
			log.Info("write identifier to journal database success", "identifier", configIdentifier)
		}
	} else {
		log.Info("get identifier from journal database success", "identifier", identifierInDB)
		if identifierInDB != configIdentifier {
			log.Fatal("identifier mismatch", "indb", identifierInDB, "inconfig", configIdentifier)
		}
	}

	lvldbHandle = db
}

// lastJournaledSeq scan the journal for the highest event sequence,
// used to keep sequence numbers monotonic across restarts.
func lastJournaledSeq() uint64 {
	if lvldbHandle == nil {
		return 0
	}
	var last uint64
	iter := lvldbHandle.NewIterator([]byte(eventKeyPrefix), nil)
	for iter.Next() {
		seq, err := parseEventRecordKey(iter.Key())
		if err != nil {
			continue
		}
		if seq > last {
			last = seq
		}
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		logWorkerError("journal", "scan journal failed", err)
	}
	return last
}

// writeJournalRecord journal listener
func writeJournalRecord(ev *trustlines.Event) {
	if lvldbHandle == nil {
		return
	}
	bs, err := json.Marshal(ev)
	if err != nil {
		logWorkerError("journal", "marshal event failed", err, "seq", ev.Seq)
		return
	}
	err = lvldbHandle.Put(eventRecordKey(ev.Seq), bs)
	if err != nil {
		logWorkerError("journal", "write event record failed", err, "seq", ev.Seq)
		return
	}
	journalSeqs.Mark(ev.Seq)
	if gap := journalSeqs.FirstGap(); gap != 0 {
		logWorkerWarn("journal", "journal has sequence gap", "missing", gap)
	}
	logWorkerTrace("journal", "write event record success", "seq", ev.Seq, "op", ev.Op)
}

// StartJournalPruneJob prune old journal records periodically
func StartJournalPruneJob() {
	if lvldbHandle == nil {
		return
	}
	journalPruneStarter.Do(func() {
		logWorker("journal", "start journal prune job", "keep", maxJournalRecords)
		utils.TopWaitGroup.Add(1)
		go doPruneJournalJob()
	})
}

func doPruneJournalJob() {
	defer utils.TopWaitGroup.Done()
	for {
		pruneJournal()
		select {
		case <-utils.CleanupChan:
			return
		case <-time.After(restIntervalInPruneJob):
		}
	}
}

func pruneJournal() {
	lastSeq := journalSeqs.MaxSeq()
	if lastSeq <= maxJournalRecords {
		return
	}
	horizon := lastSeq - maxJournalRecords
	batch := lvldbHandle.NewBatch()
	count := 0
	iter := lvldbHandle.NewIterator([]byte(eventKeyPrefix), nil)
	for iter.Next() {
		seq, err := parseEventRecordKey(iter.Key())
		if err != nil {
			continue
		}
		if seq > horizon {
			break
		}
		_ = batch.Delete(iter.Key())
		count++
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		logWorkerError("journal", "scan journal failed", err)
		return
	}
	if count == 0 {
		return
	}
	if err := batch.Write(); err != nil {
		logWorkerError("journal", "prune journal failed", err)
		return
	}
	logWorker("journal", "prune journal success", "pruned", count, "horizon", horizon)
}
