package observability

import "expvar"

var (
	LoadsTotal   = expvar.NewInt("dict_loads_total")
	LoadsOK      = expvar.NewInt("dict_loads_ok")
	LoadFailures = expvar.NewMap("dict_load_failures")
)

// RecordLoad counts one dictionary load. An empty failure means the load
// succeeded, anything else is counted under that key.
func RecordLoad(failure string) {
	LoadsTotal.Add(1)
	if failure == "" {
		LoadsOK.Add(1)
		return
	}
	LoadFailures.Add(failure, 1)
}
