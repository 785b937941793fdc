package pipeline

import "context"

// Pipeline turns transcript files into meeting minutes on disk.
type Pipeline interface {
	Process(ctx context.Context, transcriptPath string) error
	ProcessDir(ctx context.Context, dir string) error
}
