package config

// DefaultConfig returns a config pointing at the conventional content-cache
// layout. Paths are placeholders on machines where the management client
// stores its state elsewhere.
func DefaultConfig() *Config {
	return &Config{
		CacheRoot: "/var/lib/contentcache/cache",
		IndexPath: "/var/lib/contentcache/index.yaml",
		Catalogs: Catalogs{
			Applications: "/var/lib/contentcache/catalogs/applications.yaml",
			Packages:     "/var/lib/contentcache/catalogs/packages.yaml",
			Updates:      "/var/lib/contentcache/catalogs/updates.yaml",
		},
		Audit: Audit{
			LogPath:    "/var/log/cachereclaim/audit.csv",
			MaxLogSize: "2MB",
			MarkerPath: "/var/lib/contentcache/.reclaimed",
		},
		FailurePolicy: PolicyFailOpen,
	}
}
