// internal/model/sample.go
package model

import "time"

// Sample is one tick of the simulated telemetry
type Sample struct {
	Index int `json:"index"`

	// Primary is the simulated throughput (TPS)
	Primary float64 `json:"primary"`

	// Secondary is the simulated latency in milliseconds
	Secondary float64 `json:"secondary"`

	At time.Time `json:"at"`
}
