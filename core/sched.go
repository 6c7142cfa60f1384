package core

// Task handler results
const (
	TaskDone       = 0
	TaskReschedule = 1
)

// Task represents a scheduled event. Handlers run in the main-loop context
// and may update WakeTime and return TaskReschedule to run again.
type Task struct {
	WakeTime uint32
	Handler  func(*Task) uint8
	next     *Task
}

// Scheduler is a cooperative timer list dispatched from the main loop.
// Tasks are kept sorted by WakeTime; all methods must be called from the
// single main-loop context.
type Scheduler struct {
	head *Task
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule inserts a task in sorted order by WakeTime.
func (s *Scheduler) Schedule(t *Task) {
	if s.head == nil || t.WakeTime < s.head.WakeTime {
		t.next = s.head
		s.head = t
		return
	}

	cur := s.head
	for cur.next != nil && cur.next.WakeTime < t.WakeTime {
		cur = cur.next
	}
	t.next = cur.next
	cur.next = t
}

// Dispatch runs every task whose WakeTime has been reached. Handlers that
// return TaskReschedule are reinserted with their updated WakeTime.
func (s *Scheduler) Dispatch(now uint32) {
	for s.head != nil && s.head.WakeTime <= now {
		t := s.head
		s.head = t.next
		t.next = nil

		if t.Handler(t) == TaskReschedule {
			s.Schedule(t)
		}
	}
}
