package model

import "testing"

func TestTaskStatus_String(t *testing.T) {
	status := TaskStatusConverting
	expected := "Converting"
	result := status.String()

	if result != expected {
		t.Errorf("TaskStatus.String() = %s, expected %s", result, expected)
	}
}
