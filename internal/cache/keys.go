package cache

import "strings"

const (
	GlobalKeyPrefix = "studybuddy"

	WorkspaceService = "workspace"
	WorkspaceState   = "state"
)

// GenerateCacheKey joins prefix, service, object type and identifier with ":".
// Optional params are joined by "_" and appended as a final segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// WorkspaceKey is where a workspace's serialized state lives.
func WorkspaceKey(workspaceID string) string {
	return GenerateCacheKey(WorkspaceService, WorkspaceState, workspaceID)
}
