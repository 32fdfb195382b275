package interfaces

import "errors"

// ErrAlreadyExists is returned by repositories when a conditional create hits
// an existing primary key.
var ErrAlreadyExists = errors.New("record already exists")
