package diskinfo

import "context"

// Classifier reports the media type behind a mounted partition.
// Implementations are best-effort and quick: any missing platform signal
// or probe failure resolves to DeviceUnknown, never an error, and no
// probe retries or blocks past its first answer.
type Classifier interface {
	Classify(ctx context.Context, p Partition) DeviceType
}

// NewClassifier returns the classifier for the current platform.
func NewClassifier() Classifier {
	return newPlatformClassifier()
}
