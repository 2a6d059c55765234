package producer

import "time"

const (
	defaultDataTemplate = "block {n}"
	defaultRetryDelay   = 1 * time.Second

	// roundPlaceholder in a data template is replaced by the 1-based round number.
	roundPlaceholder = "{n}"
)
