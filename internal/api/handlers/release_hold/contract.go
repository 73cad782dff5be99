package release_hold

import "context"

type ReleaseHoldUseCase interface {
	Execute(ctx context.Context, holdID string, ownerID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
