// Package worker includes the background jobs of the trust server.
//
// It contains the following main jobs (concurrently):
//	fanout
//		dispatch applied operation events to the registered listeners
//		in commit order.
//	journal
//		append every applied operation to the local leveldb journal and
//		prune old records.
//	history
//		record every applied operation in the mongodb history collection.
//	assetwatch
//		watch the assets config directory and reload changed files.
//	reportstat
//		periodically log the engine counters and the journal state.
package worker
