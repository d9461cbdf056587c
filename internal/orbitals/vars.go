package orbitals

var (
	Debug   = false // set to true for verbose debug output and progress reports
	Workers = 0     // default sampling workers, 0 means runtime.NumCPU()
)
