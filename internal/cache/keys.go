package cache

import "strings"

const (
	GlobalKeyPrefix = "courseforge"
)

// GenerateCacheKey generates a cache key for a given service, object type,
// and identifier. Extra params are joined by "_" and appended.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// AnalysisKey is the cache key for a user's analysis of one unit.
func AnalysisKey(userID, unitID string) string {
	return GenerateCacheKey("analysis", "unit", unitID, userID)
}
