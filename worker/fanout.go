package worker

import (
	"sync"

	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/cmd/utils"
	"github.com/Quigles1337/PROTOCOLS-FINANCIAL-ENGINEERING/trustlines"
)

var (
	eventQueue = make(chan *trustlines.Event, 4096)

	listeners     []func(*trustlines.Event)
	listenerMutex sync.RWMutex

	fanoutStarter sync.Once
)

// QueueEvent is the engine's event sink. It never blocks the engine,
// the queue is drained by the fanout loop in commit order. A full
// queue drops the event, the journal sequence tracker reports the gap.
func QueueEvent(ev *trustlines.Event) {
	select {
	case eventQueue <- ev:
	default:
		logWorkerWarn("fanout", "event queue is full, drop event", "seq", ev.Seq, "op", ev.Op)
	}
}

// AddEventListener register a listener of applied operation events.
// Listeners are called sequentially in commit order and must not block.
func AddEventListener(listener func(*trustlines.Event)) {
	listenerMutex.Lock()
	defer listenerMutex.Unlock()
	listeners = append(listeners, listener)
}

func startEventFanout() {
	fanoutStarter.Do(func() {
		logWorker("fanout", "start event fanout job")
		utils.TopWaitGroup.Add(1)
		go eventFanoutLoop()
	})
}

func eventFanoutLoop() {
	defer utils.TopWaitGroup.Done()
	for {
		select {
		case ev := <-eventQueue:
			dispatchEvent(ev)
		case <-utils.CleanupChan:
			drainEventQueue()
			return
		}
	}
}

func drainEventQueue() {
	for {
		select {
		case ev := <-eventQueue:
			dispatchEvent(ev)
		default:
			return
		}
	}
}

func dispatchEvent(ev *trustlines.Event) {
	listenerMutex.RLock()
	defer listenerMutex.RUnlock()
	for _, listener := range listeners {
		listener(ev)
	}
}
