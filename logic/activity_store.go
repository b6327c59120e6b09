package logic

import (
	"post_bot/dto"
	"sync"
)

// activityStore holds the activities of the most recent scan for one session.
type activityStore struct {
	mu    sync.RWMutex
	items []dto.Activity
}

func newActivityStore() *activityStore {
	return &activityStore{items: []dto.Activity{}}
}

// Replace swaps in the result of a scan.
func (as *activityStore) Replace(items []dto.Activity) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.items = append([]dto.Activity{}, items...)
}

func (as *activityStore) List() []dto.Activity {
	as.mu.RLock()
	defer as.mu.RUnlock()
	return append([]dto.Activity{}, as.items...)
}

func (as *activityStore) Get(id string) (dto.Activity, bool) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	for _, act := range as.items {
		if act.Id == id {
			return act, true
		}
	}
	return dto.Activity{}, false
}

// Select returns the stored activities among ids, in store order. Unknown ids are ignored.
func (as *activityStore) Select(ids []string) []dto.Activity {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	as.mu.RLock()
	defer as.mu.RUnlock()
	res := []dto.Activity{}
	for _, act := range as.items {
		if want[act.Id] {
			res = append(res, act)
		}
	}
	return res
}

func (as *activityStore) Clear() {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.items = []dto.Activity{}
}
