package catalog

// SyncStrategy decides how a panel reconciles its snapshot after a successful write
type SyncStrategy int

const (
	// SyncLocalPatch patches the local snapshot with the acknowledged change
	SyncLocalPatch SyncStrategy = iota
	// SyncRefetch discards the snapshot and fetches the whole collection again
	SyncRefetch
)

func (s SyncStrategy) String() string {
	switch s {
	case SyncLocalPatch:
		return "LocalPatch"
	case SyncRefetch:
		return "Refetch"
	default:
		return "Unknown"
	}
}

// ErrorSurface decides how a failed request is shown to the user
type ErrorSurface int

const (
	// SurfaceInline writes the failure into the panel message line
	SurfaceInline ErrorSurface = iota
	// SurfaceAlert raises a blocking dialog that must be dismissed
	SurfaceAlert
	// SurfaceLogOnly only records the failure in the log
	SurfaceLogOnly
)

func (s ErrorSurface) String() string {
	switch s {
	case SurfaceInline:
		return "Inline"
	case SurfaceAlert:
		return "Alert"
	case SurfaceLogOnly:
		return "LogOnly"
	default:
		return "Unknown"
	}
}

// Operation names a single resource client call as seen from a panel
type Operation string

const (
	OpMovieList           Operation = "movies.list"
	OpMovieChangeStatus   Operation = "movies.change_status"
	OpMovieSearch         Operation = "movies.search"
	OpMovieCreate         Operation = "movies.create"
	OpMovieUpdate         Operation = "movies.update"
	OpLanguageList        Operation = "languages.list"
	OpLanguageStatus      Operation = "languages.change_status"
	OpLanguageCreate      Operation = "languages.create"
	OpLanguageUpdate      Operation = "languages.update"
	OpLanguageListCatalog Operation = "languages.list_external"
)

// Policy is the per-operation sync and error surfacing behavior
type Policy struct {
	Sync    SyncStrategy
	Surface ErrorSurface
	// Fallback is shown when the server response carries no message
	Fallback string
}

// The two panels deliberately differ: movie writes patch locally while language
// saves refetch, and some failures alert while others stay inline.
var policies = map[Operation]Policy{
	OpMovieList:           {Sync: SyncRefetch, Surface: SurfaceLogOnly},
	OpMovieChangeStatus:   {Sync: SyncLocalPatch, Surface: SurfaceAlert, Fallback: "No se pudo cambiar el estado"},
	OpMovieSearch:         {Sync: SyncRefetch, Surface: SurfaceAlert, Fallback: "No se pudo obtener la lista de películas"},
	OpMovieCreate:         {Sync: SyncLocalPatch, Surface: SurfaceInline, Fallback: "Error al crear la película"},
	OpMovieUpdate:         {Sync: SyncLocalPatch, Surface: SurfaceInline, Fallback: "Error al actualizar la película"},
	OpLanguageList:        {Sync: SyncRefetch, Surface: SurfaceInline, Fallback: "Error al cargar los lenguajes"},
	OpLanguageStatus:      {Sync: SyncLocalPatch, Surface: SurfaceInline, Fallback: "No se pudo cambiar el estado"},
	OpLanguageCreate:      {Sync: SyncRefetch, Surface: SurfaceInline, Fallback: "Error al guardar/actualizar el idioma"},
	OpLanguageUpdate:      {Sync: SyncRefetch, Surface: SurfaceInline, Fallback: "Error al guardar/actualizar el idioma"},
	OpLanguageListCatalog: {Sync: SyncRefetch, Surface: SurfaceAlert, Fallback: "No se pudo obtener la lista de lenguajes"},
}

// PolicyFor returns the policy of an operation. Unknown operations surface inline.
func PolicyFor(op Operation) Policy {
	if p, ok := policies[op]; ok {
		return p
	}
	return Policy{Sync: SyncRefetch, Surface: SurfaceInline}
}
