package parallel

import (
	"errors"
	"fmt"
	"sync"
)

func CreateJobQueue(queueSize int, poolSize int) *JobQueue {
	if poolSize < 1 {
		poolSize = 1
	}

	group := &JobQueue{
		jobsChannel: make(chan func() error, queueSize),
		waitGroup:   &sync.WaitGroup{},
	}

	for i := 1; i <= poolSize; i++ {
		go group.worker()
	}
	return group
}

// JobQueue runs jobs on a fixed pool of workers and collects their errors.
type JobQueue struct {
	jobsChannel chan func() error
	waitGroup   *sync.WaitGroup
	lock        sync.Mutex
	errs        []error
}

func (queue *JobQueue) Add(job func() error) error {
	if job == nil {
		return fmt.Errorf("nil job")
	}

	queue.waitGroup.Add(1)
	queue.jobsChannel <- job
	return nil
}

// Wait blocks until every added job is done and returns their errors joined.
func (queue *JobQueue) Wait() error {
	queue.waitGroup.Wait()
	queue.lock.Lock()
	defer queue.lock.Unlock()
	return errors.Join(queue.errs...)
}

func (queue *JobQueue) Close() {
	close(queue.jobsChannel)
}

func (queue *JobQueue) worker() {
	for job := range queue.jobsChannel {
		if err := job(); err != nil {
			queue.lock.Lock()
			queue.errs = append(queue.errs, err)
			queue.lock.Unlock()
		}
		queue.waitGroup.Done()
	}
}
