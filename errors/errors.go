package errors

import "fmt"

var (
	ErrEmptyCorpus            = fmt.Errorf("corpus contains no intents")
	ErrMalformedCorpus        = fmt.Errorf("malformed corpus")
	ErrDuplicateTag           = fmt.Errorf("duplicate intent tag")
	ErrNoPatterns             = fmt.Errorf("intent has no patterns")
	ErrIndexOutOfRange        = fmt.Errorf("dataset index out of range")
	ErrNonFiniteLoss          = fmt.Errorf("loss is not finite")
	ErrChecksumMismatch       = fmt.Errorf("vocabulary checksum mismatch")
	ErrModelNotFound          = fmt.Errorf("no model has been found")
	ErrInvalidHyperparameters = fmt.Errorf("invalid hyperparameters")
	ErrShapeMismatch          = fmt.Errorf("weights do not match network shape")
)
