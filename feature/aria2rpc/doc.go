// Package aria2rpc treats a running aria2 instance as a tracker target.
//
// Communication is JSON-RPC 2.0 over HTTP POST, using the three aria2
// methods this tool needs: getVersion as a connectivity probe,
// getGlobalOption to read the current bt-tracker option, and
// changeGlobalOption to commit the merged set in one atomic option change.
// When a secret is configured it is sent as the token:<secret> first
// parameter of every call.
package aria2rpc
