package secrets

// ClearBytesForTesting exposes clearBytes to the external test package.
var ClearBytesForTesting = clearBytes
