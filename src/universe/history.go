package universe

//HistoryDepth is the number of recent transition sets kept for halt
//detection. Oscillators with a period longer than this window go
//undetected; that is an accepted trade-off of the bounded history
//against storing full grid snapshots
const HistoryDepth = 8

//history is a bounded FIFO of the most recent transition sets,
//oldest evicted first
type history struct {
	sets []TransitionSet
}

//push stores a copy of the set, evicting the oldest entry at capacity
func (h *history) push(ts TransitionSet) {
	cp := make(TransitionSet, len(ts))
	copy(cp, ts)
	if len(h.sets) == HistoryDepth {
		copy(h.sets, h.sets[1:])
		h.sets[HistoryDepth-1] = cp
		return
	}
	h.sets = append(h.sets, cp)
}

//contains reports whether any stored set equals ts element-wise
func (h *history) contains(ts TransitionSet) bool {
	for _, s := range h.sets {
		if s.Equal(ts) {
			return true
		}
	}
	return false
}
