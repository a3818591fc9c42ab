package model

// TaskStatus represents the status of a download task
type TaskStatus string

const (
	// TaskStatusRunning means the stream is being resolved or downloaded
	TaskStatusRunning TaskStatus = "Running"

	// TaskStatusConverting means the container is being transcoded to audio
	TaskStatusConverting TaskStatus = "Converting"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}
