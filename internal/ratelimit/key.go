package ratelimit

import "strings"

// KeyFor builds a limiter key scoping the probe budget to one endpoint,
// provider, and caller.
func KeyFor(endpoint, providerID, clientIP string) string {
	endpoint = strings.TrimSpace(endpoint)
	providerID = strings.ToLower(strings.TrimSpace(providerID))
	clientIP = strings.TrimSpace(clientIP)
	if endpoint == "" || clientIP == "" {
		return ""
	}
	if providerID == "" {
		return endpoint + ":" + clientIP
	}
	return endpoint + ":" + providerID + ":" + clientIP
}
