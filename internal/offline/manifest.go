package offline

// DefaultVersion names the bucket of the current deployment.
const DefaultVersion = "sports-hub-v1"

// DefaultManifest lists the static assets seeded on install, relative to the asset origin.
var DefaultManifest = []string{
	"/",
	"/index.html",
	"/styles.css",
	"/app.js",
	"/manifest.json",
	"/data/teams.json",
	"/data/sample-events.json",
}

// documentPath is served when a document request fails with nothing cached.
const documentPath = "/index.html"
