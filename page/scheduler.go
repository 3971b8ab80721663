package page

import "sync"

// Scheduler runs tasks after the current render pass has finished.
type Scheduler interface {
	Schedule(task func())
}

// Queue is a FIFO of tasks drained explicitly between render passes.
type Queue struct {
	mu    sync.Mutex
	tasks []func()
}

func (q *Queue) Schedule(task func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.tasks = append(q.tasks, task)
}

// RunPending runs the tasks queued so far and returns how many ran. Tasks
// scheduled while draining wait for the next call.
func (q *Queue) RunPending() int {
	q.mu.Lock()
	tasks := q.tasks
	q.tasks = nil
	q.mu.Unlock()

	for _, task := range tasks {
		task()
	}
	return len(tasks)
}

// Len returns the number of queued tasks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}

// Background runs each task on its own goroutine.
type Background struct {
	wg sync.WaitGroup
}

func (b *Background) Schedule(task func()) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		task()
	}()
}

// Wait blocks until every scheduled task has returned.
func (b *Background) Wait() {
	b.wg.Wait()
}
