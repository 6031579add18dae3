//go:build !linux && !darwin

package diskinfo

import "context"

// nullClassifier is used where no quick media-type signal is available.
type nullClassifier struct{}

func newPlatformClassifier() Classifier {
	return nullClassifier{}
}

func (nullClassifier) Classify(ctx context.Context, p Partition) DeviceType {
	return DeviceUnknown
}
