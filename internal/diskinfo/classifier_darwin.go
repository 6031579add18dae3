//go:build darwin

package diskinfo

import "context"

// appleClassifier assumes solid-state media: every Mac shipped in the last
// decade boots from flash, and there is no cheap user-space signal for the
// odd external spinning disk.
type appleClassifier struct{}

func newPlatformClassifier() Classifier {
	return appleClassifier{}
}

func (appleClassifier) Classify(ctx context.Context, p Partition) DeviceType {
	return DeviceSolidState
}
