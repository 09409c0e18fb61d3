package topology

import "errors"

var (
	// ErrClusterNameRequired is returned when the cluster name is empty.
	ErrClusterNameRequired = errors.New("cluster name is required")

	// ErrOutputDirRequired is returned when the output directory is empty.
	ErrOutputDirRequired = errors.New("output directory is required")
)
