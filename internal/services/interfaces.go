package services

import "context"

type Scanner interface {
	Scan(ctx context.Context, req ScanRequest) (ScanOutcome, error)
}

type DuplicateFinder interface {
	Find(ctx context.Context, req DuplicateRequest) (DuplicateOutcome, error)
}

type Actions interface {
	Execute(ctx context.Context, req DeleteRequest) (DeleteResult, error)
}
