package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions looks up a route pattern. "/v1/rooms/" and "/v1/rooms" are the same route.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	path = normalize(path)

	idx := slices.IndexFunc(r.Endpoints, func(rp Permission) bool {
		return normalize(rp.Path) == path && strings.EqualFold(rp.Method, method)
	})

	if idx == -1 {
		return Permission{}
	}

	return r.Endpoints[idx]
}

func normalize(path string) string {
	if len(path) > 1 {
		return strings.TrimSuffix(path, "/")
	}

	return path
}

func Get() *PermissionData {
	permissions, err := parse(permissionsData)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}

func parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return &permissions, nil
}
