package portfolio

import "sync"

// Source is anything that emits vertical scroll offsets. Subscribe returns the function that
// releases the subscription.
type Source interface {
	Subscribe(fn func(scrollY int)) (release func())
}

// Feed is a Source that fans out offsets passed to Emit to every current subscriber.
type Feed struct {
	subs   map[int]func(int)
	nextID int
	subsMu *sync.RWMutex
}

func NewFeed() *Feed {
	return &Feed{
		subs:   map[int]func(int){},
		subsMu: &sync.RWMutex{},
	}
}

// Subscribe registers fn. The returned release func is safe to call more than once.
func (f *Feed) Subscribe(fn func(scrollY int)) func() {
	f.subsMu.Lock()
	defer f.subsMu.Unlock()

	subID := f.nextID
	f.nextID++
	f.subs[subID] = fn

	var once sync.Once

	return func() {
		once.Do(func() {
			f.subsMu.Lock()
			delete(f.subs, subID)
			f.subsMu.Unlock()
		})
	}
}

// Emit synchronously delivers scrollY to the subscribers in the order they subscribed.
func (f *Feed) Emit(scrollY int) {
	f.subsMu.RLock()
	handlers := make([]func(int), 0, len(f.subs))
	for subID := range f.nextID {
		if handler, found := f.subs[subID]; found {
			handlers = append(handlers, handler)
		}
	}
	f.subsMu.RUnlock()

	for _, handler := range handlers {
		handler(scrollY)
	}
}

// Len returns the number of active subscriptions.
func (f *Feed) Len() int {
	f.subsMu.RLock()
	defer f.subsMu.RUnlock()

	return len(f.subs)
}
