package workerpool

import (
	"fmt"
	"sync"
)

// Job represents the job to be run
type Job[T any] struct {
	Task func() (T, error)
}

// Result represents the result of a job
type JobResult[T any] struct {
	Result T
	Err    error
}

// Worker represents the worker that executes the job
type Worker[T any] struct {
	ID          int
	WorkerPool  chan chan Job[T]
	JobChannel  chan Job[T]
	ResultQueue chan<- JobResult[T]
	QuitChan    chan bool
}

func NewWorker[T any](id int, workerPool chan chan Job[T], resultQueue chan<- JobResult[T]) Worker[T] {
	return Worker[T]{
		ID:          id,
		WorkerPool:  workerPool,
		JobChannel:  make(chan Job[T]),
		ResultQueue: resultQueue,
		QuitChan:    make(chan bool),
	}
}

func (w Worker[T]) Start(wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()
		for {
			// Register the current worker into the worker queue
			w.WorkerPool <- w.JobChannel

			select {
			case job := <-w.JobChannel:
				// Execute job
				jobResult, err := job.Task()
				result := JobResult[T]{Result: jobResult, Err: err}

				// Send result to result queue
				w.ResultQueue <- result
			case <-w.QuitChan:
				// Quit the worker
				close(w.JobChannel)
				close(w.QuitChan)
				return
			}
		}
	}()
}

func (w Worker[T]) Stop() {
	go func() {
		w.QuitChan <- true
	}()
}

type Dispatcher[T any] struct {
	WorkerPool  chan chan Job[T]
	MaxWorkers  int
	JobQueue    chan Job[T]
	ResultQueue chan JobResult[T]
	Workers     []Worker[T]
}

func NewDispatcher[T any](maxWorkers int) *Dispatcher[T] {
	workerPool := make(chan chan Job[T], maxWorkers)
	return &Dispatcher[T]{
		WorkerPool:  workerPool,
		MaxWorkers:  maxWorkers,
		JobQueue:    make(chan Job[T]),
		ResultQueue: make(chan JobResult[T]),
		Workers:     make([]Worker[T], maxWorkers),
	}
}

func (d *Dispatcher[T]) Run() {
	var wg sync.WaitGroup
	for i := 0; i < d.MaxWorkers; i++ {
		worker := NewWorker(i+1, d.WorkerPool, d.ResultQueue)
		wg.Add(1)
		worker.Start(&wg)

		d.Workers[i] = worker
	}

	go d.dispatch()

	wg.Wait()
	close(d.ResultQueue)
	close(d.JobQueue)
}

func (d *Dispatcher[T]) Stop() {
	for i := 0; i < d.MaxWorkers; i++ {
		d.Workers[i].Stop()
	}
}

func (d *Dispatcher[T]) dispatch() {
	for job := range d.JobQueue {
		go func(job Job[T]) {
			jobChannel := <-d.WorkerPool
			jobChannel <- job
		}(job)
	}
}

type indexedResult[T any] struct {
	index  int
	result T
}

// Process runs every task on a pool of at most maxWorkers workers and
// returns the results in the order of the tasks. A panicking task yields
// an error result instead of crashing the process.
func Process[T any](maxWorkers int, tasks []func() (T, error)) []JobResult[T] {
	results := make([]JobResult[T], len(tasks))
	if len(tasks) == 0 {
		return results
	}

	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if maxWorkers > len(tasks) {
		maxWorkers = len(tasks)
	}

	dispatcher := NewDispatcher[indexedResult[T]](maxWorkers)
	done := make(chan struct{})
	go func() {
		defer close(done)
		dispatcher.Run()
	}()

	go func() {
		for i, task := range tasks {
			dispatcher.JobQueue <- Job[indexedResult[T]]{Task: indexedTask(i, task)}
		}
	}()

	for range tasks {
		jobResult := <-dispatcher.ResultQueue
		results[jobResult.Result.index] = JobResult[T]{
			Result: jobResult.Result.result,
			Err:    jobResult.Err,
		}
	}

	dispatcher.Stop()
	<-done

	return results
}

func indexedTask[T any](index int, task func() (T, error)) func() (indexedResult[T], error) {
	return func() (res indexedResult[T], err error) {
		res.index = index
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("task %d panicked: %v", index, r)
			}
		}()

		res.result, err = task()
		return res, err
	}
}
