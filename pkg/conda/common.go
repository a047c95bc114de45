package conda

import "errors"

const (
	GetHostTaskQueue string = "GetHostTaskQueue"
	CheckPackages    string = "CheckPackages"
	CheckChannels    string = "CheckChannels"
	Audit            string = "Audit"
)

const (
	// BlobSizeMax is the largest command output, in bytes (512 KiB), kept in a Temporal event payload.
	BlobSizeMax = 512 * 1024
)

var ErrBlobTooLarge = errors.New("blob too large")

type GetHostTaskQueueInput struct{}
type GetHostTaskQueueOutput struct {
	HostTaskQueue string
}

type CheckInput struct{}

type AuditInput struct{}
type AuditOutput struct {
	HostTaskQueue string
	Results       []Result
}

func (o AuditOutput) Failed() bool {
	return Failed(o.Results)
}
