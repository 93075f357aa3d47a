package router

import (
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
)

// A module mounts its routes on one or both groups: public routes skip
// authentication, API routes sit behind the JWT middleware.
type APIModule interface{ MountAPI(*gin.RouterGroup) }
type PublicModule interface{ MountPublic(*gin.RouterGroup) }

// Modules may control mount order; lower mounts first, default 100.
type prioritizer interface{ Priority() int }

var (
	mu         sync.RWMutex
	apiMods    []APIModule
	publicMods []PublicModule
)

// Register dispatches mod to the lists for every interface it satisfies.
func Register(mod any) {
	mu.Lock()
	defer mu.Unlock()
	if m, ok := mod.(APIModule); ok {
		apiMods = append(apiMods, m)
	}
	if m, ok := mod.(PublicModule); ok {
		publicMods = append(publicMods, m)
	}
}

func MountAllAPI(api *gin.RouterGroup) {
	mu.RLock()
	mods := append([]APIModule(nil), apiMods...)
	mu.RUnlock()

	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAPI(api)
	}
}

func MountAllPublic(public *gin.RouterGroup) {
	mu.RLock()
	mods := append([]PublicModule(nil), publicMods...)
	mu.RUnlock()

	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountPublic(public)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
