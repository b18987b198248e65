// Package redisconn opens Redis connections for the distributed tenant
// cache. Configuration comes from environment variables; Connect retries
// until the server is reachable or attempts are exhausted.
package redisconn
