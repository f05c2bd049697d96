package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCleanupJob_Process(t *testing.T) {
	mockRepo := new(MockRepository)
	job := NewCleanupJob(NewService(mockRepo), 10)

	mockRepo.On("CleanupOldEvents", mock.Anything, 10).Return(int64(100), nil)

	assert.NoError(t, job.Process(context.Background()))
	mockRepo.AssertExpectations(t)
}

func TestCleanupJob_PropagatesFailure(t *testing.T) {
	mockRepo := new(MockRepository)
	job := NewCleanupJob(NewService(mockRepo), 3)

	mockRepo.On("CleanupOldEvents", mock.Anything, 3).Return(int64(0), errors.New("disk full"))

	err := job.Process(context.Background())
	assert.ErrorContains(t, err, "disk full")
}

func TestCleanupJob_AgainstMemoryJournal(t *testing.T) {
	repo := NewMemoryRepository()
	job := NewCleanupJob(NewService(repo), 30)

	assert.NoError(t, job.Process(context.Background()))
}
