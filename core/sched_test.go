package core

import "testing"

func TestSchedulerDispatchOrder(t *testing.T) {
	s := NewScheduler()

	var fired []int
	mk := func(id int, wake uint32) *Task {
		return &Task{
			WakeTime: wake,
			Handler: func(*Task) uint8 {
				fired = append(fired, id)
				return TaskDone
			},
		}
	}

	// Insert out of order.
	s.Schedule(mk(2, 20))
	s.Schedule(mk(1, 10))
	s.Schedule(mk(3, 30))

	s.Dispatch(25)

	if len(fired) != 2 || fired[0] != 1 || fired[1] != 2 {
		t.Errorf("fired = %v, want [1 2]", fired)
	}

	s.Dispatch(30)
	if len(fired) != 3 || fired[2] != 3 {
		t.Errorf("fired = %v, want [1 2 3]", fired)
	}
}

func TestSchedulerDoesNotFireEarly(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.Schedule(&Task{
		WakeTime: 100,
		Handler: func(*Task) uint8 {
			fired++
			return TaskDone
		},
	})

	s.Dispatch(99)
	if fired != 0 {
		t.Errorf("task fired %d times before wake time", fired)
	}

	s.Dispatch(100)
	if fired != 1 {
		t.Errorf("task fired %d times at wake time, want 1", fired)
	}
}

func TestSchedulerReschedule(t *testing.T) {
	s := NewScheduler()

	fired := 0
	task := &Task{WakeTime: 10}
	task.Handler = func(tk *Task) uint8 {
		fired++
		if fired == 3 {
			return TaskDone
		}
		tk.WakeTime += 10
		return TaskReschedule
	}
	s.Schedule(task)

	for now := uint32(0); now <= 100; now += 5 {
		s.Dispatch(now)
	}

	if fired != 3 {
		t.Errorf("task fired %d times, want 3", fired)
	}
}
