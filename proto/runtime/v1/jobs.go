package v1

// Job mirrors original_source/dapr/clients/grpc/_jobs.py Job: a named, scheduled unit
// of work the sidecar will invoke back on the app at DueTime/on Schedule.
type Job struct {
	message
	Name           string
	Schedule       string
	RepeatCount    uint32
	DueTime        string
	Ttl            string
	Data           []byte
	Overwrite      bool
	FailurePolicy  *JobFailurePolicy
}

// JobFailurePolicy_Kind distinguishes the two failure policies Dapr jobs support.
type JobFailurePolicy_Kind int32

const (
	JobFailurePolicy_DROP  JobFailurePolicy_Kind = 0
	JobFailurePolicy_RETRY JobFailurePolicy_Kind = 1
)

type JobFailurePolicy struct {
	message
	Kind          JobFailurePolicy_Kind
	MaxRetries    int32
	MaxInterval   string
}

type ScheduleJobRequest struct {
	message
	Job *Job
}

type ScheduleJobResponse struct {
	message
}

type GetJobRequest struct {
	message
	Name string
}

type GetJobResponse struct {
	message
	Job *Job
}

type DeleteJobRequest struct {
	message
	Name string
}

type DeleteJobResponse struct {
	message
}
