package dapr

import (
	"context"
	"strings"

	runtimev1 "github.com/rotationalio/dapr-go/proto/runtime/v1"
)

// JobFailurePolicyKind distinguishes the two failure policies a scheduled job can
// carry.
type JobFailurePolicyKind = runtimev1.JobFailurePolicy_Kind

const (
	JobFailurePolicyDrop  = runtimev1.JobFailurePolicy_DROP
	JobFailurePolicyRetry = runtimev1.JobFailurePolicy_RETRY
)

// JobFailurePolicy configures what the sidecar does when the app fails to handle a
// triggered job.
type JobFailurePolicy struct {
	Kind        JobFailurePolicyKind
	MaxRetries  int32
	MaxInterval string
}

// Job is a named, scheduled unit of work the sidecar triggers back on the app.
type Job struct {
	Name          string
	Schedule      string
	RepeatCount   uint32
	DueTime       string
	Ttl           string
	Data          []byte
	Overwrite     bool
	FailurePolicy *JobFailurePolicy
}

func wireJob(job Job) *runtimev1.Job {
	wire := &runtimev1.Job{
		Name:        job.Name,
		Schedule:    job.Schedule,
		RepeatCount: job.RepeatCount,
		DueTime:     job.DueTime,
		Ttl:         job.Ttl,
		Data:        job.Data,
		Overwrite:   job.Overwrite,
	}
	if job.FailurePolicy != nil {
		wire.FailurePolicy = &runtimev1.JobFailurePolicy{
			Kind:        job.FailurePolicy.Kind,
			MaxRetries:  job.FailurePolicy.MaxRetries,
			MaxInterval: job.FailurePolicy.MaxInterval,
		}
	}
	return wire
}

func jobFromWire(wire *runtimev1.Job) *Job {
	if wire == nil {
		return nil
	}
	job := &Job{
		Name:        wire.Name,
		Schedule:    wire.Schedule,
		RepeatCount: wire.RepeatCount,
		DueTime:     wire.DueTime,
		Ttl:         wire.Ttl,
		Data:        wire.Data,
		Overwrite:   wire.Overwrite,
	}
	if wire.FailurePolicy != nil {
		job.FailurePolicy = &JobFailurePolicy{
			Kind:        wire.FailurePolicy.Kind,
			MaxRetries:  wire.FailurePolicy.MaxRetries,
			MaxInterval: wire.FailurePolicy.MaxInterval,
		}
	}
	return job
}

// ScheduleJob registers job with the sidecar's job scheduler. If job.Overwrite is
// false and a job by this name already exists, the sidecar rejects the call. name is
// required and at least one of schedule/due_time must be present; both are validated
// locally before any RPC is attempted and reported as the sentinels ErrEmptyJobName
// and ErrEmptyJobSchedule, which are not ArgumentError values.
func (c *Client) ScheduleJob(ctx context.Context, job Job) error {
	if strings.TrimSpace(job.Name) == "" {
		return ErrEmptyJobName
	}
	if strings.TrimSpace(job.Schedule) == "" && strings.TrimSpace(job.DueTime) == "" {
		return ErrEmptyJobSchedule
	}

	ctx, cancel := c.invokeContext(ctx)
	defer cancel()
	_, err := c.api.ScheduleJobAlpha1(ctx, &runtimev1.ScheduleJobRequest{Job: wireJob(job)}, c.copts...)
	return AsSidecarError(err)
}

// GetJob fetches a previously scheduled job by name.
func (c *Client) GetJob(ctx context.Context, name string) (*Job, error) {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()
	resp, err := c.api.GetJobAlpha1(ctx, &runtimev1.GetJobRequest{Name: name}, c.copts...)
	if err != nil {
		return nil, AsSidecarError(err)
	}
	return jobFromWire(resp.Job), nil
}

// DeleteJob cancels a scheduled job by name.
func (c *Client) DeleteJob(ctx context.Context, name string) error {
	ctx, cancel := c.invokeContext(ctx)
	defer cancel()
	_, err := c.api.DeleteJobAlpha1(ctx, &runtimev1.DeleteJobRequest{Name: name}, c.copts...)
	return AsSidecarError(err)
}
