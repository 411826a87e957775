package runtime

import (
	"slices"
	"sync"
)

// connSet is an immutable snapshot of the connection ids of one key.
// Writers never mutate a published set, they swap in a new one.
type connSet struct {
	ids map[string]struct{}
}

func newConnSet(ids ...string) *connSet {
	s := &connSet{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

func (s *connSet) has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *connSet) with(id string) *connSet {
	next := &connSet{ids: make(map[string]struct{}, len(s.ids)+1)}
	for k := range s.ids {
		next.ids[k] = struct{}{}
	}
	next.ids[id] = struct{}{}
	return next
}

func (s *connSet) without(id string) *connSet {
	next := &connSet{ids: make(map[string]struct{}, len(s.ids))}
	for k := range s.ids {
		if k != id {
			next.ids[k] = struct{}{}
		}
	}
	return next
}

func (s *connSet) list() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// connectionIndex maps a key to a set of connection ids.
// Updates of one key are compare-and-swap loops over immutable snapshots,
// so concurrent writers of the same key never lose an update and writers of
// different keys never contend. Empty sets are removed from the map.
type connectionIndex struct {
	buckets sync.Map // key -> *connSet
}

func (i *connectionIndex) add(key, connID string) {
	for {
		current, loaded := i.buckets.Load(key)
		if !loaded {
			if _, loaded = i.buckets.LoadOrStore(key, newConnSet(connID)); !loaded {
				return
			}
			continue
		}
		set := current.(*connSet)
		if set.has(connID) {
			return
		}
		if i.buckets.CompareAndSwap(key, set, set.with(connID)) {
			return
		}
	}
}

func (i *connectionIndex) remove(key, connID string) {
	for {
		current, ok := i.buckets.Load(key)
		if !ok {
			return
		}
		set := current.(*connSet)
		if !set.has(connID) {
			return
		}
		next := set.without(connID)
		if len(next.ids) == 0 {
			if i.buckets.CompareAndDelete(key, set) {
				return
			}
			continue
		}
		if i.buckets.CompareAndSwap(key, set, next) {
			return
		}
	}
}

// list never returns nil.
func (i *connectionIndex) list(key string) []string {
	current, ok := i.buckets.Load(key)
	if !ok {
		return []string{}
	}
	return current.(*connSet).list()
}

// size counts the keys holding at least one connection.
func (i *connectionIndex) size() int {
	n := 0
	i.buckets.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
