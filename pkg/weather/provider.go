package weather

import "context"

// Provider performs one weather fetch. The control loop calls Refresh once
// per elapsed refresh timer and treats the call as blocking; implementations
// bound it with their own timeout. A non-nil error or a snapshot with
// Valid=false both degrade to the renderer's "no data" placeholder — there is
// no retry beyond the next scheduled refresh.
type Provider interface {
	Name() string
	Refresh(ctx context.Context) (*Snapshot, error)
}
