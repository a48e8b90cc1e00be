// Implements the ready queues used by the engines.
// readyQueue is a FIFO used by Round-Robin; readyHeap orders jobs by a key and
// keeps insertion order among equal keys (SRTF, SJF).

package sim

import (
	"container/heap"
	"fmt"
	"strings"
)

// readyQueue is a FIFO of jobs that have arrived and wait for the CPU.
type readyQueue struct {
	queue []*job
}

// Enqueue adds a job to the back of the queue.
func (rq *readyQueue) Enqueue(j *job) {
	if j == nil {
		panic("Enqueue: job must not be nil")
	}
	rq.queue = append(rq.queue, j)
}

// Dequeue removes and returns the job at the front of the queue.
// Returns nil if the queue is empty.
func (rq *readyQueue) Dequeue() *job {
	if len(rq.queue) == 0 {
		return nil
	}
	j := rq.queue[0]
	rq.queue[0] = nil
	rq.queue = rq.queue[1:]
	return j
}

// Peek returns the front job without removing it, or nil when empty.
func (rq *readyQueue) Peek() *job {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Len returns the number of queued jobs.
func (rq *readyQueue) Len() int {
	return len(rq.queue)
}

func (rq *readyQueue) String() string {
	return formatJobs(rq.queue)
}

// heapEntry pins the key a job was queued with together with its insertion
// sequence number. Keys of queued jobs never change while they wait.
type heapEntry struct {
	job *job
	key float64
	seq uint64
}

// readyHeap is a priority queue of jobs.
// Ordering: key (lower first) → insertion sequence (earlier first).
type readyHeap struct {
	entries []heapEntry
	nextSeq uint64
}

// Len implements heap.Interface
func (h *readyHeap) Len() int {
	return len(h.entries)
}

// Less implements heap.Interface with deterministic ordering
func (h *readyHeap) Less(i, j int) bool {
	ei, ej := h.entries[i], h.entries[j]
	if ei.key != ej.key {
		return ei.key < ej.key
	}
	return ei.seq < ej.seq
}

// Swap implements heap.Interface
func (h *readyHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

// Push implements heap.Interface
func (h *readyHeap) Push(x interface{}) {
	h.entries = append(h.entries, x.(heapEntry))
}

// Pop implements heap.Interface
func (h *readyHeap) Pop() interface{} {
	old := h.entries
	n := len(old)
	item := old[n-1]
	h.entries = old[0 : n-1]
	return item
}

// Insert queues j under key.
func (h *readyHeap) Insert(j *job, key float64) {
	heap.Push(h, heapEntry{job: j, key: key, seq: h.nextSeq})
	h.nextSeq++
}

// PopMin removes and returns the job with the lowest key, or nil when empty.
func (h *readyHeap) PopMin() *job {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(heapEntry).job
}

// Peek returns the job with the lowest key without removing it.
func (h *readyHeap) Peek() *job {
	if h.Len() == 0 {
		return nil
	}
	return h.entries[0].job
}

func (h *readyHeap) String() string {
	jobs := make([]*job, len(h.entries))
	for i, e := range h.entries {
		jobs[i] = e.job
	}
	return formatJobs(jobs)
}

func formatJobs(jobs []*job) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, j := range jobs {
		sb.WriteString(fmt.Sprint(j))
		if i < len(jobs)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
