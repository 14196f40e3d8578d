// Package schemas contains the response schemas sent to the client
package schemas

// Res is the generic status response
type Res struct {
	Status string `json:"status"`
}
