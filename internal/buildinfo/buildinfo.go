package buildinfo

// Set via -ldflags at build time.
var (
	Name    = "fleetopt"
	Version = "dev"
	Commit  = ""
	BuiltAt = ""
)

func Info() map[string]string {
	return map[string]string{
		"name":    Name,
		"version": Version,
		"commit":  Commit,
		"builtAt": BuiltAt,
	}
}
