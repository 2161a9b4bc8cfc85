package services

import "time"

// nowUTC returns the current time in UTC. Centralized so timestamps written
// by the services are uniform.
func nowUTC() time.Time {
	return time.Now().UTC()
}
